package localmetrics

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	listCounter   metric.Int64Counter
	getCounter    metric.Int64Counter
	saveCounter   metric.Int64Counter
	createCounter metric.Int64Counter
	renameCounter metric.Int64Counter
	deleteCounter metric.Int64Counter
	activeGauge   metric.Int64Gauge
)

func New() error {
	var err error
	listCounter, err = otel.Meter("telemetry/localmetrics").Int64Counter("notebook.list.count",
		metric.WithDescription("Number of List requests"),
		metric.WithUnit("count"))
	if err != nil {
		return err
	}

	getCounter, err = otel.Meter("telemetry/localmetrics").Int64Counter("notebook.get.count",
		metric.WithDescription("Number of Get requests"),
		metric.WithUnit("count"))
	if err != nil {
		return err
	}

	saveCounter, err = otel.Meter("telemetry/localmetrics").Int64Counter("notebook.save.count",
		metric.WithDescription("Number of Save requests"),
		metric.WithUnit("count"))
	if err != nil {
		return err
	}

	createCounter, err = otel.Meter("telemetry/localmetrics").Int64Counter("notebook.create.count",
		metric.WithDescription("Number of Create requests"),
		metric.WithUnit("count"))
	if err != nil {
		return err
	}

	renameCounter, err = otel.Meter("telemetry/localmetrics").Int64Counter("notebook.rename.count",
		metric.WithDescription("Number of Rename requests"),
		metric.WithUnit("count"))
	if err != nil {
		return err
	}

	deleteCounter, err = otel.Meter("telemetry/localmetrics").Int64Counter("notebook.delete.count",
		metric.WithDescription("Number of Delete requests"),
		metric.WithUnit("count"))
	if err != nil {
		return err
	}

	// gauge for notebooks currently held in the registry
	activeGauge, err = otel.Meter("telemetry/localmetrics").Int64Gauge("notebook.active.gauge",
		metric.WithDescription("Number of notebooks in the registry"),
		metric.WithUnit("count"))
	if err != nil {
		return err
	}

	return nil
}

func ListCounter() metric.Int64Counter {
	return listCounter
}

func GetCounter() metric.Int64Counter {
	return getCounter
}

func SaveCounter() metric.Int64Counter {
	return saveCounter
}

func CreateCounter() metric.Int64Counter {
	return createCounter
}

func RenameCounter() metric.Int64Counter {
	return renameCounter
}

func DeleteCounter() metric.Int64Counter {
	return deleteCounter
}

func ActiveGauge() metric.Int64Gauge {
	return activeGauge
}
