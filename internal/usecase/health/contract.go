package health

import "context"

// DBPinger checks storage connectivity.
type DBPinger interface {
	Ping(ctx context.Context) error
}
