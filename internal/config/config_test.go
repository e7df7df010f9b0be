package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" || cfg.Database.Table != "datawarehouse" {
		t.Fatalf("unexpected database defaults %+v", cfg.Database)
	}
	if cfg.Database.QueryTimeout != 10*time.Second {
		t.Fatalf("expected 10s query timeout, got %v", cfg.Database.QueryTimeout)
	}
	if cfg.Cache.Enabled {
		t.Fatalf("cache must be disabled by default")
	}
	if len(cfg.Categories.RoomTypes) == 0 || len(cfg.Categories.DataTypes) == 0 {
		t.Fatalf("expected default categories")
	}
	if cfg.Monitoring != (MonitoringConfig{MetricsPath: "/metrics", Namespace: "guitarkeep"}) {
		t.Fatalf("unexpected monitoring defaults %+v", cfg.Monitoring)
	}
}

func TestLoadCategoriesFromEnv(t *testing.T) {
	t.Setenv("GUITARKEEP_CATEGORIES__ROOM_TYPES", "Living Room, Kitchen ,Outside")
	t.Setenv("GUITARKEEP_CATEGORIES__DATA_TYPES", "Temperature,Humidity")

	cfg, err := load(viper.New(), t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	wantRooms := []string{"Living Room", "Kitchen", "Outside"}
	if !reflect.DeepEqual(cfg.Categories.RoomTypes, wantRooms) {
		t.Fatalf("expected %v, got %v", wantRooms, cfg.Categories.RoomTypes)
	}
	wantData := []string{"Temperature", "Humidity"}
	if !reflect.DeepEqual(cfg.Categories.DataTypes, wantData) {
		t.Fatalf("expected %v, got %v", wantData, cfg.Categories.DataTypes)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := `
server:
  port: 9000
database:
  driver: pgx
  url: postgres://u:p@db:5432/gk
categories:
  room_types: ["Office", "Outside"]
cache:
  enabled: true
  ttl: 5s
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := load(viper.New(), dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Fatalf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Database.DSN() != "postgres://u:p@db:5432/gk" {
		t.Fatalf("expected url to win as dsn, got %q", cfg.Database.DSN())
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTL != 5*time.Second {
		t.Fatalf("unexpected cache config %+v", cfg.Cache)
	}
	if !reflect.DeepEqual(cfg.Categories.RoomTypes, []string{"Office", "Outside"}) {
		t.Fatalf("unexpected room types %v", cfg.Categories.RoomTypes)
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("GUITARKEEP_DATABASE__DRIVER", "sqlite")
	_, err := load(viper.New(), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "unsupported database driver") {
		t.Fatalf("expected driver validation error, got %v", err)
	}
}

func TestDSNFromParts(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "gk", SSLMode: "disable"}
	want := "host=db port=5432 user=u password=p dbname=gk sslmode=disable"
	if c.DSN() != want {
		t.Fatalf("expected %q, got %q", want, c.DSN())
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"a, b", "", " c "})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected split %v", got)
	}
}
