package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nerdneilsfield/validator-format-agent/pkg/format"
	"github.com/nerdneilsfield/validator-format-agent/pkg/translation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// newTranslateCommand 创建 translate 子命令
func newTranslateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "translate [file]",
		Short: "在两种格式之间翻译校验器内容",
		Long: `读取文件或标准输入中的校验器内容，从 --from 格式翻译到 --to 格式。
语言模型不可用时自动回退到启发式转换，翻译永远会产出结果。`,
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
				spinner, _ = pterm.DefaultSpinner.Start("正在调用语言模型翻译...")
			}

			result, err := svc.Translate(cmd.Context(), content, source, target)
			if spinner != nil {
				spinner.Stop()
			}
			if err != nil {
				return err
			}

			printTranslationResult(result)
			return nil
		},
	}
}

// printTranslationResult 输出翻译结果和摘要表格
func printTranslationResult(result *translation.Result) {
	fmt.Println(result.Content)
	fmt.Println()

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"字段", "值"})
	t.AppendRows([]table.Row{
		{"源格式", result.SourceFormat},
		{"目标格式", result.TargetFormat},
		{"置信度", colorizeScore(result.Confidence)},
		{"语言模型", result.UsedLanguageModel},
	})
	fmt.Println(t.Render())

	printWarnings(result.Warnings)
}

// printWarnings 输出警告列表
func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	yellow := color.New(color.FgYellow)
	for _, w := range warnings {
		yellow.Printf("警告: %s\n", w)
	}
}

// colorizeScore 按分数高低着色
func colorizeScore(score float64) string {
	text := fmt.Sprintf("%.2f", score)
	switch {
	case score >= 0.8:
		return color.GreenString(text)
	case score >= 0.5:
		return color.YellowString(text)
	default:
		return color.RedString(text)
	}
}

// printList 输出带前缀的条目列表
func printList(prefix string, items []string) {
	for _, item := range items {
		fmt.Printf("%s: %s\n", prefix, strings.TrimSpace(item))
	}
}
