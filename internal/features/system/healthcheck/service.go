package system_healthcheck

import (
	"fmt"

	"taskhive/internal/storage"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type HealthcheckService struct{}

type HealthStatus struct {
	Status string `json:"status"`

	DatabaseOk bool `json:"databaseOk"`

	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	DiskUsedPercent   float64 `json:"diskUsedPercent"`
}

func (s *HealthcheckService) GetHealthStatus() (*HealthStatus, error) {
	status := &HealthStatus{Status: "ok"}

	sqlDb, err := storage.GetDb().DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database connection pool: %w", err)
	}

	if err := sqlDb.Ping(); err == nil {
		status.DatabaseOk = true
	} else {
		status.Status = "degraded"
	}

	if memoryStats, err := mem.VirtualMemory(); err == nil {
		status.MemoryUsedPercent = memoryStats.UsedPercent
	}

	if diskStats, err := disk.Usage("/"); err == nil {
		status.DiskUsedPercent = diskStats.UsedPercent
	}

	return status, nil
}
