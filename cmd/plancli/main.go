// Command plancli generates a single day's lesson plan from the command line.
// Useful for exercising the prompt template and parsing against the live
// service without running the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/zeromicro/go-zero/core/logx"

	"lessonapi/pkg/confkit"
	llmpkg "lessonapi/pkg/llm"
	plannerpkg "lessonapi/pkg/planner"
)

func fatalf(format string, args ...interface{}) {
	logx.Errorf(format, args...)
	os.Exit(1)
}

func main() {
	var (
		llmPath     = flag.String("llm-config", "etc/llm.yaml", "path to llm client configuration")
		plannerPath = flag.String("planner-config", "etc/planner.yaml", "path to planner configuration")
		topic       = flag.String("topic", "", "lesson topic")
		knowledge   = flag.String("knowledge", "", "prior knowledge (PoC)")
		skill       = flag.String("skill", "", "target skill (PoC)")
	)
	flag.Parse()
	logx.MustSetup(logx.LogConf{})
	logx.DisableStat()

	confkit.LoadDotenvOnce()

	if *topic == "" || *knowledge == "" || *skill == "" {
		fatalf("plancli: -topic, -knowledge and -skill are all required")
	}

	llmCfg, err := llmpkg.LoadConfig(*llmPath)
	if err != nil {
		fatalf("load llm config: %v", err)
	}
	client, err := llmpkg.NewClient(llmCfg)
	if err != nil {
		fatalf("init llm client: %v", err)
	}
	defer client.Close()

	plannerCfg, err := plannerpkg.LoadConfig(*plannerPath)
	if err != nil {
		fatalf("load planner config: %v", err)
	}
	pl, err := plannerpkg.New(plannerCfg, client)
	if err != nil {
		fatalf("init planner: %v", err)
	}

	records := pl.BuildPlans(context.Background(), []plannerpkg.DayInput{{
		Topic:     *topic,
		Knowledge: *knowledge,
		Skill:     *skill,
	}})

	out, err := json.MarshalIndent(records[0], "", "  ")
	if err != nil {
		fatalf("marshal record: %v", err)
	}
	fmt.Println(string(out))
}
