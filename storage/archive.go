// Package storage archives raw upstream payloads to object storage so a
// collection run can be replayed or audited after the fact.
package storage

import "context"

type Archive interface {
	Put(ctx context.Context, key string, contentType string, body []byte) error
}
