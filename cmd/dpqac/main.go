// Command dpqac reads a two-qubit gate list, compiles it against a DPQA
// architecture, and prints the resulting instruction stream (or reports
// infeasibility). The gate-list parser stays deliberately small; the
// constraint system itself lives in internal/dpqa.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/kegliz/dpqac/internal/config"
	"github.com/kegliz/dpqac/internal/dpqa"
	"github.com/kegliz/dpqac/internal/logger"
	"github.com/kegliz/dpqac/qc/circuit"
	"github.com/kegliz/dpqac/qc/gate"
)

func main() {
	flags := pflag.NewFlagSet("dpqac", pflag.ExitOnError)
	config.BindFlags(flags)
	configFile := flags.String("config", "", "optional config file (YAML/JSON/TOML)")
	flags.Parse(os.Args[1:])

	cfg, err := config.New(flags, *configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dpqac: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(logger.LoggerOptions{Debug: cfg.GetBool("debug")}).SpawnForService("dpqac")

	circuitPath := cfg.GetString("circuit")
	if circuitPath == "" {
		fmt.Fprintln(os.Stderr, "dpqac: --circuit is required")
		os.Exit(1)
	}

	circ, err := loadCircuit(circuitPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dpqac: %v\n", err)
		os.Exit(1)
	}
	circ.RecalculateStages()

	rows, cols := cfg.GetInt("rows"), cfg.GetInt("cols")
	aodRows, aodCols := cfg.GetInt("aod-rows"), cfg.GetInt("aod-cols")
	if aodRows == 0 {
		aodRows = rows
	}
	if aodCols == 0 {
		aodCols = cols
	}

	compiler := dpqa.NewAOD(rows, cols, aodRows, aodCols)
	compiler.SetExtraStages(cfg.GetInt("extra-stages"))
	compiler.SetLogger(log)
	if cfg.GetString("objective") == "transfers" {
		compiler.SetObjective(dpqa.ObjectiveTransfers)
	}

	fmt.Println(circ.String())
	fmt.Println(compiler.Instance().String())

	result, err := compiler.Solve(circ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dpqac: internal error: %v\n", err)
		os.Exit(1)
	}
	if !result.Ok() {
		fmt.Println("Failed: no schedule found at the configured stage count")
		os.Exit(1)
	}
	for _, in := range result.Instructions() {
		fmt.Println(in.String())
	}
}

// loadCircuit parses a gate-list file: one gate per line, "KIND CONTROL
// TARGET" (e.g. "CZ 0 1"), blank lines and "#"-prefixed comments ignored.
func loadCircuit(path string) (*circuit.Circuit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dpqac: opening circuit file: %w", err)
	}
	defer f.Close()

	c := circuit.New()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("dpqac: %s:%d: expected \"KIND CONTROL TARGET\", got %q", path, lineNo, line)
		}
		kind, err := parseKind(fields[0])
		if err != nil {
			return nil, fmt.Errorf("dpqac: %s:%d: %w", path, lineNo, err)
		}
		ctrl, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("dpqac: %s:%d: control qubit: %w", path, lineNo, err)
		}
		tgt, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("dpqac: %s:%d: target qubit: %w", path, lineNo, err)
		}
		if ctrl < 0 || tgt < 0 {
			return nil, fmt.Errorf("dpqac: %s:%d: %w", path, lineNo, dpqa.ErrInvalidQubit)
		}
		if ctrl == tgt {
			return nil, fmt.Errorf("dpqac: %s:%d: control and target qubit must differ", path, lineNo)
		}
		c.Append(gate.New(kind, ctrl, tgt))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dpqac: reading circuit file: %w", err)
	}
	return c, nil
}

func parseKind(s string) (gate.Kind, error) {
	switch strings.ToUpper(s) {
	case "CX":
		return gate.CX, nil
	case "CZ":
		return gate.CZ, nil
	default:
		return 0, fmt.Errorf("unknown gate kind %q", s)
	}
}
