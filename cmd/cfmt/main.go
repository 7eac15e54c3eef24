package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-acpiosl/pkg/cfmt"
	"github.com/goliatone/go-acpiosl/pkg/fixture"
)

func main() {
	format := flag.String("format", "", "format string to render")
	args := flag.String("args", "", "comma-separated kind:value arguments (int:-5,uint:255,byte:65,string:hello,pointer:0xffe0)")
	cases := flag.String("cases", "", "YAML case file to run in batch mode")
	interactive := flag.Bool("interactive", false, "prompt for arguments instead of -args")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if *cases != "" {
		runCases(*cases)
		return
	}
	if *format == "" {
		log.Fatal("either -format or -cases is required")
	}

	var (
		values []cfmt.Value
		err    error
	)
	if *interactive {
		values, err = promptValues()
	} else {
		values, err = parseValues(*args)
	}
	if err != nil {
		log.Fatalf("collect arguments: %v", err)
	}

	text, err := cfmt.Format(*format, cfmt.Values(values...))
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(text), 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Rendered text written to %s\n", *output)
		return
	}
	fmt.Println(text)
}

func runCases(path string) {
	list, err := fixture.Load(path)
	if err != nil {
		log.Fatalf("load cases: %v", err)
	}

	failed := 0
	for _, c := range list {
		if err := runCase(c); err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", c.Name, err)
			continue
		}
		fmt.Printf("ok   %s\n", c.Name)
	}
	if failed > 0 {
		log.Fatalf("%d of %d cases failed", failed, len(list))
	}
}

func runCase(c fixture.Case) error {
	cursor, err := c.Cursor()
	if err != nil {
		return err
	}
	got, renderErr := cfmt.Format(c.Format, cursor)

	wantErr, err := c.WantError()
	if err != nil {
		return err
	}
	if wantErr != nil {
		if !errors.Is(renderErr, wantErr) {
			return fmt.Errorf("error = %v, want %v", renderErr, wantErr)
		}
		return nil
	}
	if renderErr != nil {
		return renderErr
	}
	if got != c.Want {
		return fmt.Errorf("output %q, want %q", got, c.Want)
	}
	return nil
}

var argKinds = []string{"int", "uint", "byte", "string", "pointer", "done"}

func promptValues() ([]cfmt.Value, error) {
	var values []cfmt.Value
	for {
		var kind string
		prompt := &survey.Select{
			Message: "Next argument type:",
			Options: argKinds,
			Default: "done",
			Help:    "arguments are consumed in format-string order",
		}
		if err := survey.AskOne(prompt, &kind); err != nil {
			return nil, err
		}
		if kind == "done" {
			return values, nil
		}

		var raw string
		input := &survey.Input{
			Message: fmt.Sprintf("Value for %s argument %d:", kind, len(values)),
		}
		validator := survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			_, err := parseValue(kind, s)
			return err
		})
		if err := survey.AskOne(input, &raw, validator); err != nil {
			return nil, err
		}

		value, err := parseValue(kind, raw)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
}

func parseValues(spec string) ([]cfmt.Value, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}
	parts := strings.Split(spec, ",")
	out := make([]cfmt.Value, 0, len(parts))
	for _, part := range parts {
		kind, raw, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("argument %q is not kind:value", part)
		}
		value, err := parseValue(strings.TrimSpace(kind), raw)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

func parseValue(kind, raw string) (cfmt.Value, error) {
	switch kind {
	case "int":
		v, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return cfmt.Value{}, fmt.Errorf("int argument %q: %w", raw, err)
		}
		return cfmt.Int(v), nil
	case "uint":
		v, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return cfmt.Value{}, fmt.Errorf("uint argument %q: %w", raw, err)
		}
		return cfmt.Uint(v), nil
	case "byte":
		v, err := strconv.ParseUint(raw, 0, 8)
		if err != nil {
			return cfmt.Value{}, fmt.Errorf("byte argument %q: %w", raw, err)
		}
		return cfmt.Byte(byte(v)), nil
	case "pointer":
		v, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return cfmt.Value{}, fmt.Errorf("pointer argument %q: %w", raw, err)
		}
		return cfmt.Pointer(v), nil
	case "string":
		return cfmt.String(raw), nil
	default:
		return cfmt.Value{}, fmt.Errorf("unknown argument kind %q", kind)
	}
}
