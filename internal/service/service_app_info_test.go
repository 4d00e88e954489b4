package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-photo-albums/models"
)

func TestAppInfoService_GetBuildInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("v1.0.0", "2026-03-01", "deadbeef"))

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "v1.0.0", got.BuildVersion())
	assert.Equal(t, "2026-03-01", got.BuildDate())
	assert.Equal(t, "deadbeef", got.BuildCommit())
}

func TestAppInfoService_EmptyBuildInfo(t *testing.T) {
	got := NewAppInfoService(models.AppBuildInfo{}).GetBuildInfo(context.Background())

	assert.Equal(t, "N/A", got.BuildVersion())
	assert.Equal(t, "N/A", got.BuildCommit())
}
