package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gomahjong/analyzer/app"
	"gomahjong/analyzer/application/dto"
	"gomahjong/analyzer/cli"
	"gomahjong/common/config"
	"gomahjong/common/log"
	"gomahjong/common/metrics"
	"gomahjong/engines/mahjong"
)

var (
	configFile string
	logLevel   string
	handFile   string
	hands      int
	seed       int64
	workers    int
)

var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "立直麻将向听数、有效牌分析",
	Long:  `立直麻将向听数、有效牌与听牌形分析服务`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.InitLog("analyzer", logLevel)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 分析服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(configFile, func(c *config.Config) {
			log.SetLevel(c.Log.Level)
			log.Info("配置已更新，日志级别: %s", c.Log.Level)
		})
		if err != nil {
			return fmt.Errorf("文件配置发生错误：%w", err)
		}
		cfg := config.Current()
		log.InitLog(cfg.AppName, cfg.Log.Level)
		log.Info("配置文件: %+v", *cfg)

		go func() {
			log.Info("启动监控..., URL: http://localhost:%d/debug/statsviz/", cfg.MetricPort)
			if err := metrics.Serve(fmt.Sprintf("0.0.0.0:%d", cfg.MetricPort)); err != nil {
				log.Error("监控服务退出: %v", err)
			}
		}()

		return app.Run(context.Background(), cfg)
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "分析 JSON 文件中的一手牌",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(handFile)
		if err != nil {
			return err
		}
		var req dto.HandRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("解析 %s: %w", handFile, err)
		}
		h, err := req.ToHand()
		if err != nil {
			return err
		}
		visible, err := req.VisibleCounts()
		if err != nil {
			return err
		}
		p, err := mahjong.NewAnalyzer(nil).Analyze(h, visible)
		if err != nil {
			return err
		}
		cli.Render(cmd.OutOrStdout(), &req, dto.FromProgress(p))
		return nil
	},
}

var crosscheckCmd = &cobra.Command{
	Use:   "crosscheck",
	Short: "随机手牌与 tempai-core 对照",
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := cli.Crosscheck(cmd.Context(), mahjong.NewSearcher(), hands, seed, workers)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d 手，听牌 %d 手，不一致 %d 手\n", report.Hands, report.Tenpai, len(report.Mismatches))
		for _, m := range report.Mismatches {
			fmt.Fprintln(out, m)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "logLevel", "info", "log level")

	serveCmd.Flags().StringVar(&configFile, "resource", "", "resource file")
	serveCmd.MarkFlagRequired("resource")

	analyzeCmd.Flags().StringVar(&handFile, "file", "", "hand request json")
	analyzeCmd.MarkFlagRequired("file")

	crosscheckCmd.Flags().IntVar(&hands, "hands", 1000, "number of random hands")
	crosscheckCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	crosscheckCmd.Flags().IntVar(&workers, "workers", 4, "concurrent workers")

	rootCmd.AddCommand(serveCmd, analyzeCmd, crosscheckCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("error happen: %v", err)
		os.Exit(1)
	}
}
