package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/zeebo/errs"

	"github.com/Lantah/go-lantah-base/cmd/utils"
	"github.com/Lantah/go-lantah-base/decimal"
	"github.com/Lantah/go-lantah-base/log"
	"github.com/Lantah/go-lantah-base/numbers"
	"github.com/Lantah/go-lantah-base/params"
	"github.com/Lantah/go-lantah-base/xdr"
)

// Error is the class of command line errors.
var Error = errs.Class("scint")

var (
	inferCommand = &cli.Command{
		Action:    infer,
		Name:      "infer",
		Usage:     "Print the smallest integer type holding a value",
		ArgsUsage: "<value>",
		Description: `
Values are base 10 unless prefixed with 0x, 0o or 0b. With a Scale in the
config file values are decimals with that many fractional digits. Use --
before negative values.
`,
	}
	encodeCommand = &cli.Command{
		Action:    encode,
		Name:      "encode",
		Usage:     "Print the base64 XDR ScVal of a value",
		ArgsUsage: "<value>",
		Flags: []cli.Flag{
			utils.TypeFlag,
		},
		Description: `
The type is taken from --type, then from DefaultType in the config file, and
is otherwise inferred from the value.
`,
	}
	decodeCommand = &cli.Command{
		Action:    decode,
		Name:      "decode",
		Usage:     "Print the integer held by a base64 XDR ScVal",
		ArgsUsage: "<base64>",
	}
)

func argument(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", Error.New("%s: expected one argument, got %d", ctx.Command.Name, ctx.NArg())
	}

	return ctx.Args().First(), nil
}

func outputFormat(ctx *cli.Context) (string, error) {
	output := ctx.String(utils.OutputFlag.Name)
	if output == "" {
		return params.GetConfig().Output, nil
	}

	switch output {
	case params.OutputJSON, params.OutputText:
		return output, nil
	}

	return "", Error.New("bad output format %q", output)
}

// readValue applies the configured scale, if any, to a command line value.
func readValue(arg string) (interface{}, error) {
	scale := params.GetConfig().Scale
	if scale == 0 {
		return arg, nil
	}

	b, err := decimal.Parse(arg, scale)
	if err != nil {
		return nil, err
	}

	return b.Value, nil
}

func printInt(ctx *cli.Context, x *numbers.XdrInt) error {
	output, err := outputFormat(ctx)
	if err != nil {
		return err
	}

	w := ctx.App.Writer

	if output == params.OutputText {
		s := x.String()
		if scale := params.GetConfig().Scale; scale > 0 {
			s = decimal.FromXdrInt(x, scale).String()
		}

		_, err = fmt.Fprintf(w, "%s %s\n", s, x.Type())

		return err
	}

	bs, err := json.Marshal(x)
	if err != nil {
		return Error.Wrap(err)
	}

	_, err = fmt.Fprintln(w, string(bs))

	return err
}

func infer(ctx *cli.Context) error {
	arg, err := argument(ctx)
	if err != nil {
		return err
	}

	value, err := readValue(arg)
	if err != nil {
		return err
	}

	sc, err := numbers.NewScInt(value)
	if err != nil {
		return err
	}

	log.Debug("inferred", "value", sc.String(), "type", sc.Type().String())

	return printInt(ctx, sc.XdrInt)
}

func encode(ctx *cli.Context) error {
	arg, err := argument(ctx)
	if err != nil {
		return err
	}

	value, err := readValue(arg)
	if err != nil {
		return err
	}

	name := ctx.String(utils.TypeFlag.Name)
	if name == "" {
		name = params.GetConfig().DefaultType
	}

	opts := []numbers.Option{}
	if name != "" {
		opts = append(opts, numbers.WithTypeName(name))
	}

	sc, err := numbers.NewScInt(value, opts...)
	if err != nil {
		return err
	}

	scv, err := sc.ToScVal()
	if err != nil {
		return err
	}

	s, err := scv.MarshalBase64()
	if err != nil {
		return err
	}

	log.Debug("encoded", "value", sc.String(), "type", scv.Type.String())

	_, err = fmt.Fprintln(ctx.App.Writer, s)

	return err
}

func decode(ctx *cli.Context) error {
	arg, err := argument(ctx)
	if err != nil {
		return err
	}

	scv := xdr.ScVal{}

	err = xdr.SafeUnmarshalBase64(arg, &scv)
	if err != nil {
		return err
	}

	x, err := numbers.NewXdrIntFromScVal(scv)
	if err != nil {
		return err
	}

	log.Debug("decoded", "type", scv.Type.String(), "value", x.String())

	return printInt(ctx, x)
}
