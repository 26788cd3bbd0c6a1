package meta

const (
	Service = "nbmem"
	Version = "0.1.0"
)
