// Mfgen generates the integer builtins of the extensions package (generated_int.go)
// from a table of unsigned 64 bits operations.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"hash/crc32"
	"os"
	"strings"
	"text/template"
	"unicode"

	"fortio.org/cli"
	"fortio.org/log"
)

func main() {
	os.Exit(Main())
}

// Op is one generated builtin. Implementations live in extensions/intops.go.
type Op struct {
	Name string   // builtin name, snake case.
	Args []string // u64 or u32; the first one is always u64.
	Ret  string   // u64, u32 (a count), bool, option or carry.
	Impl string
}

var ops = []Op{
	{"count_ones", []string{"u64"}, "u32", "countOnes"},
	{"count_zeros", []string{"u64"}, "u32", "countZeros"},
	{"leading_zeros", []string{"u64"}, "u32", "leadingZeros"},
	{"trailing_zeros", []string{"u64"}, "u32", "trailingZeros"},
	{"rotate_left", []string{"u64", "u32"}, "u64", "rotateLeft"},
	{"rotate_right", []string{"u64", "u32"}, "u64", "rotateRight"},
	{"swap_bytes", []string{"u64"}, "u64", "swapBytes"},
	{"reverse_bits", []string{"u64"}, "u64", "reverseBits"},
	{"is_power_of_two", []string{"u64"}, "bool", "isPowerOfTwo"},
	{"checked_next_power_of_two", []string{"u64"}, "option", "checkedNextPowerOfTwo"},
	{"checked_add", []string{"u64", "u64"}, "option", "checkedAdd"},
	{"checked_sub", []string{"u64", "u64"}, "option", "checkedSub"},
	{"checked_mul", []string{"u64", "u64"}, "option", "checkedMul"},
	{"checked_div", []string{"u64", "u64"}, "option", "checkedDiv"},
	{"checked_rem", []string{"u64", "u64"}, "option", "checkedRem"},
	{"checked_pow", []string{"u64", "u32"}, "option", "checkedPow"},
	{"wrapping_add", []string{"u64", "u64"}, "u64", "wrappingAdd"},
	{"wrapping_sub", []string{"u64", "u64"}, "u64", "wrappingSub"},
	{"wrapping_mul", []string{"u64", "u64"}, "u64", "wrappingMul"},
	{"wrapping_pow", []string{"u64", "u32"}, "u64", "wrappingPow"},
	{"overflowing_add", []string{"u64", "u64"}, "carry", "overflowingAdd"},
	{"overflowing_sub", []string{"u64", "u64"}, "carry", "overflowingSub"},
	{"overflowing_mul", []string{"u64", "u64"}, "carry", "overflowingMul"},
	{"overflowing_pow", []string{"u64", "u32"}, "carry", "overflowingPow"},
	{"saturating_add", []string{"u64", "u64"}, "u64", "saturatingAdd"},
	{"saturating_sub", []string{"u64", "u64"}, "u64", "saturatingSub"},
	{"saturating_mul", []string{"u64", "u64"}, "u64", "saturatingMul"},
	{"saturating_pow", []string{"u64", "u32"}, "u64", "saturatingPow"},
}

// GoName is the generated callback name: gen + camel case of Name.
func (o Op) GoName() string {
	var sb strings.Builder
	sb.WriteString("gen")
	for _, w := range strings.Split(o.Name, "_") {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		sb.WriteString(string(r))
	}
	return sb.String()
}

var retNames = map[string]string{
	"u64":    "u64",
	"u32":    "u32",
	"bool":   "bool",
	"option": "Option<u64>",
	"carry":  "(u64, bool)",
}

// Signature is also the builtin help.
func (o Op) Signature() string {
	return fmt.Sprintf("`%s(%s) -> %s`", o.Name, strings.Join(o.Args, ", "), retNames[o.Ret])
}

// Narrowed lists the indexes of the u32 arguments.
func (o Op) Narrowed() []int {
	var res []int
	for i, a := range o.Args {
		if a == "u32" {
			res = append(res, i)
		}
	}
	return res
}

func (o Op) call() string {
	args := make([]string, 0, len(o.Args))
	for i, a := range o.Args {
		if a == "u32" {
			args = append(args, fmt.Sprintf("a%d", i))
		} else {
			args = append(args, fmt.Sprintf("a[%d]", i))
		}
	}
	return o.Impl + "(" + strings.Join(args, ", ") + ")"
}

// Push is the tail of the callback, conversion and push of the result.
func (o Op) Push() string {
	c := o.call()
	switch o.Ret {
	case "u64":
		return "e.Push(object.Integer{Value: " + c + "})\n\treturn nil"
	case "u32":
		return "return pushInt(e, " + c + ")"
	case "bool":
		return "e.Push(object.NativeBoolToBooleanObject(" + c + "))\n\treturn nil"
	case "option":
		return "r, ok := " + c + "\n\tpushOption(e, r, ok)\n\treturn nil"
	case "carry":
		return "r, overflow := " + c + "\n\tpushCarry(e, r, overflow)\n\treturn nil"
	}
	panic("unknown return kind " + o.Ret + " for " + o.Name)
}

// Checksum is the crc32 of the canonical form of the table, recorded in the
// generated file header so -check can tell when the output is stale.
func Checksum(table []Op) uint32 {
	var buf bytes.Buffer
	for _, o := range table {
		fmt.Fprintf(&buf, "%s|%s|%s|%s\n", o.Name, strings.Join(o.Args, ","), o.Ret, o.Impl)
	}
	return crc32.ChecksumIEEE(buf.Bytes())
}

const checksumPrefix = "// Table checksum: crc32 "

var fileTemplate = template.Must(template.New("int").Parse(`// Code generated by mfgen; DO NOT EDIT.
` + checksumPrefix + `{{printf "%08x" .Checksum}}.

package extensions

import "microforth.io/microforth/object"
{{range .Ops}}
// {{.Signature}}
func {{.GoName}}(e object.Engine) error {
	a, err := popIntegers(e, {{len .Args}})
	if err != nil {
		return err
	}
{{- range .Narrowed}}
	a{{.}}, err := toU32(a[{{.}}])
	if err != nil {
		return err
	}
{{- end}}
	{{.Push}}
}
{{end}}
func registerGenerated() {
	for _, g := range []struct {
		name, help string
		cb         object.Callback
	}{
{{- range .Ops}}
		{"{{.Name}}", "{{.Signature}}", {{.GoName}}},
{{- end}}
	} {
		MustCreate(object.Builtin{Name: g.name, Help: g.help, Category: object.CategoryInteger, Callback: g.cb})
	}
}
`))

// Generate returns the formatted Go source for table.
func Generate(table []Op) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Checksum uint32
		Ops      []Op
	}{Checksum(table), table})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

// fileChecksum extracts the checksum line from an existing generated file.
func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if after, found := strings.CutPrefix(sc.Text(), checksumPrefix); found {
			return strings.TrimSuffix(after, "."), nil
		}
	}
	if err = sc.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no checksum line in %s", path)
}

func Main() int {
	cli.MaxArgs = 0
	outFlag := flag.String("o", "generated_int.go", "output `file`")
	checkFlag := flag.Bool("check", false, "only check the output file is up to date with the table")
	cli.Main()
	out := *outFlag
	want := fmt.Sprintf("%08x", Checksum(ops))
	if *checkFlag {
		got, err := fileChecksum(out)
		if err != nil {
			return log.FErrf("Can't check %q: %v", out, err)
		}
		if got != want {
			return log.FErrf("%q is stale (checksum %s, table is %s): run go generate", out, got, want)
		}
		log.Infof("%q is up to date (%s)", out, want)
		return 0
	}
	src, err := Generate(ops)
	if err != nil {
		return log.FErrf("Generating code: %v", err)
	}
	if err = os.WriteFile(out, src, 0o644); err != nil { //nolint:gosec // generated source is world readable.
		return log.FErrf("Writing %q: %v", out, err)
	}
	log.Infof("Wrote %d builtins to %q (checksum %s)", len(ops), out, want)
	return 0
}
