// Command lhectl is a small demonstration CLI: it generates a key pair,
// encrypts two plaintexts at a chosen level, homomorphically combines them,
// and decrypts the result, logging each step.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/nthparty/lhe/config"
	"github.com/nthparty/lhe/manylevel"
)

func main() {
	app := &cli.App{
		Name:  "lhectl",
		Usage: "exercise the leveled homomorphic encryption primitive end to end",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "dlog-bound",
				Value:   1 << 20,
				Usage:   "ceiling the bounded discrete-log search runs up to",
				EnvVars: []string{"LHE_DLOG_BOUND"},
			},
			&cli.IntFlag{
				Name:    "level-budget",
				Aliases: []string{"d"},
				Value:   2,
				Usage:   "nominal multiplication budget d",
				EnvVars: []string{"LHE_LEVEL_BUDGET"},
			},
			&cli.IntFlag{
				Name:    "plaintext-bits",
				Aliases: []string{"k"},
				Value:   10,
				Usage:   "bit width k of the recursive construction's plaintext modulus p=2^k",
				EnvVars: []string{"LHE_PLAINTEXT_BITS"},
			},
			&cli.IntFlag{
				Name:  "level",
				Value: 1,
				Usage: "level to encrypt both operands at before combining",
			},
			&cli.Int64Flag{
				Name:  "a",
				Value: 737,
				Usage: "first plaintext operand",
			},
			&cli.Int64Flag{
				Name:  "b",
				Value: 747,
				Usage: "second plaintext operand",
			},
			&cli.StringFlag{
				Name:  "op",
				Value: "add",
				Usage: "operation to perform on the two ciphertexts: add or mul",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug-level logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return errors.Wrap(err, "lhectl: building logger")
	}
	defer logger.Sync() //nolint:errcheck

	cfg := config.Config{
		DlogBound: c.Int("dlog-bound"),
		D:         c.Int("level-budget"),
		K:         c.Int("plaintext-bits"),
	}
	level := c.Int("level")
	a, b := c.Int64("a"), c.Int64("b")
	op := c.String("op")

	logger.Info("generating key pair")
	sk, pk, err := manylevel.Keygen()
	if err != nil {
		return errors.Wrap(err, "lhectl: keygen")
	}

	p := cfg.P()
	ma, mb := uint64(a)%p, uint64(b)%p

	logger.Debug("encrypting operands", zap.Int("level", level), zap.Uint64("a", ma), zap.Uint64("b", mb))
	ctA, err := manylevel.Encrypt(pk, cfg, level, ma)
	if err != nil {
		return errors.Wrap(err, "lhectl: encrypting a")
	}
	ctB, err := manylevel.Encrypt(pk, cfg, level, mb)
	if err != nil {
		return errors.Wrap(err, "lhectl: encrypting b")
	}

	var result manylevel.Ciphertext
	switch op {
	case "add":
		result, err = manylevel.Add(cfg, ctA, ctB)
	case "mul":
		result, err = manylevel.Mul(cfg, pk, ctA, ctB)
	default:
		return errors.Errorf("lhectl: unknown op %q (want add or mul)", op)
	}
	if err != nil {
		return errors.Wrap(err, "lhectl: homomorphic operation")
	}

	logger.Info("combined ciphertexts", zap.String("op", op), zap.Int("resultLevel", result.Level()))

	plain, err := manylevel.Decrypt(cfg, sk, result)
	if err != nil {
		return errors.Wrap(err, "lhectl: decrypting result")
	}

	fmt.Printf("%d %s %d = %d (mod %d)\n", a, op, b, plain, p)
	return nil
}
