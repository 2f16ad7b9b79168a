package cli

import (
	"fmt"
	"io"
	"strings"
)

// GenerateCompletion writes a completion script for shell. Operation names
// are offered for the first positional argument.
func GenerateCompletion(out io.Writer, shell string, operations []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, operations)
	case "zsh":
		return generateZshCompletion(out, operations)
	case "fish":
		return generateFishCompletion(out, operations)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

func generateBashCompletion(out io.Writer, operations []string) error {
	script := `# Bash completion script for digitcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_digitcalc_completions() {
    local cur prev opts operations
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="--help -h --version -V --timeout --json --server --port --no-color --output -o --quiet -q --interactive -i --batch --concurrency --max-digits --log-level --completion --list"
    operations="%s"

    case "${prev}" in
        --completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- "${cur}") )
            return 0
            ;;
        --log-level)
            COMPREPLY=( $(compgen -W "debug info warn error" -- "${cur}") )
            return 0
            ;;
        --output|-o|--batch)
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return 0
            ;;
        --port)
            COMPREPLY=( $(compgen -W "8080 3000 5000 9000" -- "${cur}") )
            return 0
            ;;
        --timeout)
            COMPREPLY=( $(compgen -W "5s 30s 1m 5m" -- "${cur}") )
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
    COMPREPLY=( $(compgen -W "${operations}" -- "${cur}") )
}

complete -F _digitcalc_completions digitcalc
`
	_, err := fmt.Fprintf(out, script, strings.Join(operations, " "))
	return err
}

func generateZshCompletion(out io.Writer, operations []string) error {
	script := `#compdef digitcalc

# Zsh completion script for digitcalc
# Add this to your ~/.zshrc or place in $fpath

_digitcalc() {
    local -a operations
    operations=(%s)

    _arguments -s \
        '(-h --help)'{-h,--help}'[Show help message]' \
        '(-V --version)'{-V,--version}'[Show version information]' \
        '--timeout[Maximum execution time]:duration:(5s 30s 1m 5m)' \
        '--json[Output in JSON format]' \
        '--server[Start HTTP server mode]' \
        '--port[Server port]:port:(8080 3000 5000 9000)' \
        '--no-color[Disable colored output]' \
        '(-o --output)'{-o,--output}'[Output file path]:file:_files' \
        '(-q --quiet)'{-q,--quiet}'[Print the value only]' \
        '(-i --interactive)'{-i,--interactive}'[Start interactive REPL mode]' \
        '--batch[Evaluate a job file]:file:_files' \
        '--concurrency[Concurrent batch jobs]:jobs:(1 2 4 8)' \
        '--max-digits[Maximum operand length]:digits:' \
        '--log-level[Log level]:level:(debug info warn error)' \
        '--list[List operations]' \
        '--completion[Generate completion script]:shell:(bash zsh fish)' \
        '1:operation:($operations)' \
        '*:operand:'
}

_digitcalc "$@"
`
	_, err := fmt.Fprintf(out, script, strings.Join(operations, " "))
	return err
}

func generateFishCompletion(out io.Writer, operations []string) error {
	script := `# Fish completion script for digitcalc
# Add this to ~/.config/fish/completions/digitcalc.fish

complete -c digitcalc -f

complete -c digitcalc -s h -l help -d 'Show help message'
complete -c digitcalc -s V -l version -d 'Show version information'

complete -c digitcalc -n '__fish_is_first_arg' -xa '%s'

complete -c digitcalc -l timeout -d 'Maximum execution time' -xa '5s 30s 1m 5m'
complete -c digitcalc -l max-digits -d 'Maximum operand length' -x
complete -c digitcalc -l log-level -d 'Log level' -xa 'debug info warn error'

complete -c digitcalc -l json -d 'Output in JSON format'
complete -c digitcalc -s o -l output -d 'Output file path' -rF
complete -c digitcalc -s q -l quiet -d 'Print the value only'
complete -c digitcalc -l no-color -d 'Disable colored output'

complete -c digitcalc -l batch -d 'Evaluate a job file' -rF
complete -c digitcalc -l concurrency -d 'Concurrent batch jobs' -xa '1 2 4 8'

complete -c digitcalc -l server -d 'Start HTTP server mode'
complete -c digitcalc -l port -d 'Server port' -xa '8080 3000 5000 9000'

complete -c digitcalc -s i -l interactive -d 'Start interactive REPL mode'
complete -c digitcalc -l list -d 'List operations'
complete -c digitcalc -l completion -d 'Generate completion script' -xa 'bash zsh fish'
`
	_, err := fmt.Fprintf(out, script, strings.Join(operations, " "))
	return err
}
