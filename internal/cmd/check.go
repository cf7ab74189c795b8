package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/hostcond-org/hostcond/internal/condition"
)

// errNotMet is returned when the condition list does not hold; it maps to
// a non-zero exit status in main.
var errNotMet = errors.New("conditions not met")

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] [CONDITION...]",
		Short: "Evaluate conditions against this system",
		Long: `Evaluates condition assignments such as

  hostcond check "ConditionPathExists=/etc/machine-id" "ConditionMemory=>=1G"

and exits 0 when the whole list holds, 1 when it does not. Assignments
may also be read from a YAML file with a top-level "conditions" list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")

			exprs := args
			if file != "" {
				fromFile, err := readConditionFile(file)
				if err != nil {
					return err
				}
				exprs = append(fromFile, exprs...)
			}
			if len(exprs) == 0 {
				return fmt.Errorf("no conditions given")
			}

			var list condition.List
			for _, expr := range exprs {
				c, _, err := condition.Parse(expr)
				if err != nil {
					return err
				}
				list = append(list, c)
			}

			ctx := loggerContext(cmd)
			met := condition.TestList(ctx, list, os.Environ())

			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				list.Dump(cmd.OutOrStdout(), "")
			}
			if !met {
				return errNotMet
			}
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "YAML file with a conditions list")
	return cmd
}

type conditionFile struct {
	Conditions []string `yaml:"conditions"`
}

func readConditionFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var cf conditionFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cf.Conditions, nil
}
