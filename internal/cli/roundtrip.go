package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// newRoundTripCommand 创建 roundtrip 子命令
func newRoundTripCommand() *cobra.Command {
	var showIntermediate bool

	cmd := &cobra.Command{
		Use:   "roundtrip [file]",
		Short: "往返翻译并度量关键词保留率",
		Long: `把内容从 --from 格式翻译到 --to 格式再翻译回来，
统计往返后保留下来的关键词比例，以此认证翻译质量。`,
		Args: cobra.MaximumNArgs(1),
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

			content, err := readContent(args)
			if err != nil {
				return err
			}

			svc, cfg, err := buildService(cmd.Context(), log)
			if err != nil {
				return err
			}

			var spinner *pterm.SpinnerPrinter
			if cfg.LLM.Provider != "" && !disableLLM {
				spinner, _ = pterm.DefaultSpinner.Start("正在执行往返翻译...")
			}

			result, err := svc.TestRoundTrip(cmd.Context(), content, source, target)
			if spinner != nil {
				spinner.Stop()
			}
			if err != nil {
				return err
			}

			if showIntermediate {
				fmt.Println("--- 中间内容 ---")
				fmt.Println(result.IntermediateContent)
				fmt.Println("--- 往返内容 ---")
				fmt.Println(result.RoundTripContent)
				fmt.Println()
			}

			t := table.NewWriter()
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"字段", "值"})
			t.AppendRows([]table.Row{
				{"保留率", colorizeScore(result.PreservationScore)},
				{"达标", result.Acceptable},
				{"差异数", len(result.Differences)},
			})
			fmt.Println(t.Render())

			printList("差异", result.Differences)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showIntermediate, "show-intermediate", false, "输出中间内容和往返内容")
	return cmd
}
