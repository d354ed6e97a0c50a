package bot

import (
	"fmt"
	"log"

	"auto-thread-bot/config"
	"auto-thread-bot/utils"

	"github.com/robfig/cron/v3"
)

var c *cron.Cron

// newScheduler builds a cron runner that calls job on spec.
func newScheduler(spec string, job func()) (*cron.Cron, error) {
	runner := cron.New()
	if _, err := runner.AddFunc(spec, job); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return runner, nil
}

// startScheduler starts the periodic thread config reload. "off" or an empty spec disables it.
func startScheduler(spec string) error {
	if spec == "" || spec == "off" {
		log.Println("Config reload disabled.")
		return nil
	}

	runner, err := newScheduler(spec, reloadThreadConfig)
	if err != nil {
		return fmt.Errorf("could not set up config reload job: %w", err)
	}
	c = runner
	c.Start()
	log.Printf("Config reload scheduled (%s).", spec)
	return nil
}

func reloadThreadConfig() {
	if err := config.Reload(); err != nil {
		utils.Error("Scheduler", "ConfigReload", fmt.Sprintf("Keeping previous thread config: %v", err))
	}
}

// stopScheduler stops the cron jobs and waits for a running reload to finish.
func stopScheduler() {
	if c != nil {
		<-c.Stop().Done()
		log.Println("Scheduler stopped.")
	}
}
