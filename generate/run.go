// Package generate implements program commands producing media queries and
// stylesheets.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"bpq/breakpoint"
	"bpq/state"
)

// RunQuery prints condition (or complete guard) for every token.
func RunQuery(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cmd.Args().Len() == 0 {
		return errors.New("no breakpoint tokens have been specified")
	}
	return query(ctx, cmd.Args().Slice(), cmd.Bool("wrap"), os.Stdout)
}

// RunWrap guards rules from SOURCE with the breakpoint guard for TOKEN.
func RunWrap(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("wrap")

	token := cmd.Args().Get(0)
	if len(token) == 0 {
		return errors.New("no breakpoint token has been specified")
	}
	if cmd.Args().Len() > 3 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[3:]))
	}

	var (
		in      io.Reader = os.Stdin
		srcName           = "STDIN"
	)
	if src := cmd.Args().Get(1); len(src) > 0 && src != "-" {
		f, err := os.Open(src)
		if err != nil {
			return fmt.Errorf("unable to open source file '%s': %w", src, err)
		}
		defer f.Close()
		in, srcName = f, filepath.Base(src)
	}

	out, dstName, err := openDestination(cmd.Args().Get(2), cmd.Bool("overwrite"))
	if err != nil {
		return err
	}
	defer func() {
		if er := out.Close(); er != nil && err == nil {
			err = fmt.Errorf("unable to close destination: %w", er)
		}
	}()

	log.Debug("Wrapping rules", zap.String("token", token), zap.String("source", srcName), zap.String("destination", dstName))
	return wrap(ctx, token, in, srcName, out)
}

// RunGenerate writes utility stylesheet to DESTINATION.
func RunGenerate(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	out, dstName, err := openDestination(cmd.Args().Get(0), cmd.Bool("overwrite"))
	if err != nil {
		return err
	}
	defer func() {
		if er := out.Close(); er != nil && err == nil {
			err = fmt.Errorf("unable to close destination: %w", er)
		}
	}()

	log.Debug("Generating stylesheet", zap.String("destination", dstName))
	defer func(start time.Time) {
		log.Debug("Generation completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return generate(ctx, out)
}

// query writes one line per token. Token without condition produces an empty
// line so output stays aligned with input.
func query(ctx context.Context, tokens []string, guard bool, w io.Writer) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("query")

	for _, token := range tokens {
		if err := ctx.Err(); err != nil {
			return err
		}
		q, err := breakpoint.ParseQuery(token, log)
		if err != nil {
			log.Warn("Bad breakpoint token, skipping", zap.String("token", token), zap.Error(err))
			if _, err := fmt.Fprintln(w); err != nil {
				return fmt.Errorf("unable to write result: %w", err)
			}
			continue
		}

		var line string
		if guard {
			if mq, ok := env.Synth.MediaQuery(q); ok {
				line = "@media " + mq.Raw
			}
		} else {
			line = env.Synth.Condition(q)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("unable to write result: %w", err)
		}
	}
	return nil
}

func wrap(ctx context.Context, token string, r io.Reader, srcName string, w io.Writer) error {
	env := state.EnvFromContext(ctx)

	q, err := breakpoint.ParseQuery(token, env.Log)
	if err != nil {
		return fmt.Errorf("bad breakpoint token: %w", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read source: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	sheet := env.Synth.WrapCSS(q, data, srcName)
	if _, err := sheet.WriteTo(w); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}

func generate(ctx context.Context, w io.Writer) error {
	env := state.EnvFromContext(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := env.Gen.Stylesheet().WriteTo(w); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	return nil
}
