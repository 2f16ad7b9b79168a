package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

// GoldenCase is one entry of the golden file.
type GoldenCase struct {
	Op     string   `json:"op"`
	Args   []string `json:"args"`
	Result string   `json:"result"`
}

func main() {
	outputDir := flag.String("out", "internal/calculator/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	fmt.Println("Generating golden data...")
	data := cases()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d cases at %s\n", len(data), filename)
}

// cases builds the golden vectors. Operands are Fibonacci numbers, which
// give large values with known divisibility structure, and every expected
// result comes from math/big.
func cases() []GoldenCase {
	f := fibBig
	var out []GoldenCase
	add := func(op, result string, args ...string) {
		out = append(out, GoldenCase{Op: op, Args: args, Result: result})
	}

	cmp := map[int]string{-1: "LESS", 0: "EQUAL", 1: "GREATER"}
	add("nat.cmp", cmp[f(99).Cmp(f(100))], s(f(99)), s(f(100)))
	add("nat.add", s(new(big.Int).Add(f(98), f(99))), s(f(98)), s(f(99)))
	add("nat.sub", s(new(big.Int).Sub(f(100), f(99))), s(f(100)), s(f(99)))
	add("nat.mul", s(new(big.Int).Mul(f(60), f(70))), s(f(60)), s(f(70)))
	add("nat.div", s(new(big.Int).Quo(f(100), f(50))), s(f(100)), s(f(50)))
	add("nat.mod", s(new(big.Int).Rem(f(100), f(37))), s(f(100)), s(f(37)))
	q, r := new(big.Int).QuoRem(f(90), f(44), new(big.Int))
	add("nat.divmod", s(q)+" rem "+s(r), s(f(90)), s(f(44)))
	add("nat.gcd", s(new(big.Int).GCD(nil, nil, f(100), f(50))), s(f(100)), s(f(50)))
	add("nat.gcd", s(new(big.Int).GCD(nil, nil, f(100), f(99))), s(f(100)), s(f(99)))
	add("nat.lcm", s(lcm(f(60), f(45))), s(f(60)), s(f(45)))

	add("int.sub", s(new(big.Int).Sub(f(98), f(100))), s(f(98)), s(f(100)))
	add("int.mul", s(new(big.Int).Mul(neg(f(70)), f(71))), s(neg(f(70))), s(f(71)))
	add("int.div", s(intDiv(neg(f(100)), f(50))), s(neg(f(100))), s(f(50)))
	add("int.div", s(intDiv(f(97), neg(f(31)))), s(f(97)), s(neg(f(31))))
	add("int.mod", s(intMod(neg(f(100)), f(50))), s(neg(f(100))), s(f(50)))
	add("int.mod", s(intMod(f(97), neg(f(31)))), s(f(97)), s(neg(f(31))))

	add("rat.reduce", rat(new(big.Rat).SetFrac(f(100), f(50))), s(f(100))+"/"+s(f(50)))
	sum := new(big.Rat).Add(new(big.Rat).SetFrac(big.NewInt(1), f(50)), new(big.Rat).SetFrac(big.NewInt(1), f(51)))
	add("rat.add", rat(sum), "1/"+s(f(50)), "1/"+s(f(51)))
	prod := new(big.Rat).Mul(new(big.Rat).SetFrac(f(40), f(41)), new(big.Rat).SetFrac(f(41), f(40)))
	add("rat.mul", rat(prod), s(f(40))+"/"+s(f(41)), s(f(41))+"/"+s(f(40)))
	quo := new(big.Rat).Quo(new(big.Rat).SetFrac(neg(f(30)), big.NewInt(7)), new(big.Rat).SetFrac(f(30), big.NewInt(14)))
	add("rat.div", rat(quo), s(neg(f(30)))+"/7", s(f(30))+"/14")

	return out
}

func s(x *big.Int) string { return x.String() }

func neg(x *big.Int) *big.Int { return new(big.Int).Neg(x) }

func rat(r *big.Rat) string { return r.Num().String() + "/" + r.Denom().String() }

func lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	return new(big.Int).Mul(new(big.Int).Quo(a, g), b)
}

// intDiv divides magnitudes and, when the quotient is nonzero and the
// operands have different signs, returns -(q+1).
func intDiv(x, y *big.Int) *big.Int {
	q := new(big.Int).Quo(new(big.Int).Abs(x), new(big.Int).Abs(y))
	if q.Sign() == 0 {
		return q
	}
	if x.Sign() != y.Sign() {
		return q.Neg(q.Add(q, big.NewInt(1)))
	}
	return q
}

func intMod(x, y *big.Int) *big.Int {
	return new(big.Int).Sub(x, new(big.Int).Mul(intDiv(x, y), y))
}

// fibBig calculates the nth Fibonacci number iteratively.
func fibBig(n uint64) *big.Int {
	if n == 0 {
		return big.NewInt(0)
	}
	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := uint64(2); i <= n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return b
}
