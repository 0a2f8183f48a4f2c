package health

import (
	"testing"

	"github.com/go-co-op/gocron/v2"
)

func newScheduler(t *testing.T) gocron.Scheduler {
	t.Helper()
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	t.Cleanup(func() { _ = scheduler.Shutdown() })
	return scheduler
}

func TestNew_RegistersJob(t *testing.T) {
	scheduler := newScheduler(t)

	service, err := New(scheduler, "* * * * *", func() bool { return true })
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !service.IsHealthy() {
		t.Fatal("expected healthy")
	}

	jobs := scheduler.Jobs()
	if len(jobs) != 1 || jobs[0].Name() != "Check app running" {
		t.Fatalf("unexpected jobs: %v", jobs)
	}
	service.echo()
}

func TestNew_InvalidCronTab(t *testing.T) {
	if _, err := New(newScheduler(t), "not a cron", func() bool { return true }); err == nil {
		t.Fatal("expected error for invalid crontab")
	}
}

func TestIsHealthy_FollowsProbe(t *testing.T) {
	connected := false
	service, err := New(newScheduler(t), "* * * * *", func() bool { return connected })
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if service.IsHealthy() {
		t.Fatal("expected unhealthy")
	}
	service.echo()
	connected = true
	if !service.IsHealthy() {
		t.Fatal("expected healthy")
	}
}
