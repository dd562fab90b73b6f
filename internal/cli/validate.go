package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"github.com/spf13/cobra"
)

// newValidateCommand 创建 validate 子命令
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate original_file translated_file",
		Short: "评估两段不同格式的内容是否语义等价",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			defer func() { _ = log.Sync() }()

			source, err := format.Parse(sourceFmt)
			if err != nil {
				return err
			}
			target, err := format.Parse(targetFmt)
			if err != nil {
				return err
			}

			original, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("读取原文失败: %w", err)
			}
			translated, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("读取译文失败: %w", err)
			}

			svc, _, err := buildService(cmd.Context(), log)
			if err != nil {
				return err
			}

			validation, err := svc.ValidateTranslation(cmd.Context(), string(original), string(translated), source, target)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"字段", "值"})
			t.AppendRows([]table.Row{
				{"语义等价", validation.IsValid},
				{"等价度", colorizeScore(validation.Equivalence)},
				{"警告数", len(validation.Warnings)},
			})
			fmt.Println(t.Render())

			printWarnings(validation.Warnings)
			printList("建议", validation.Suggestions)
			return nil
		},
	}
}
