package connection_test

import (
	"testing"

	"go-payslip/internal/shared/connection"

	"github.com/stretchr/testify/assert"
)

func TestPostgresOptions_DSN(t *testing.T) {
	opts := connection.PostgresOptions{
		Host: "db", User: "app", Password: "pw", Name: "payslip", Port: "5432", SSLMode: "disable",
	}
	assert.Equal(t, "host=db user=app password=pw dbname=payslip port=5432 sslmode=disable", opts.DSN())
}

func TestNewKafkaReader(t *testing.T) {
	reader := connection.NewKafkaReader("localhost:9092", "payslip.report.requested.v1", "go-payslip-reports")
	defer reader.Close()

	cfg := reader.Config()
	assert.Equal(t, "payslip.report.requested.v1", cfg.Topic)
	assert.Equal(t, "go-payslip-reports", cfg.GroupID)
}
