package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	errBuild := errors.New("build query error")
	errInternal := errors.New("internal error")

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "raw serialization failure",
			err:  &pq.Error{Code: "40001"},
			want: true,
		},
		{
			name: "raw deadlock",
			err:  &pq.Error{Code: "40P01"},
			want: true,
		},
		{
			// Репозиторий оборачивает причину дважды - цепочка должна
			// сохранять *pq.Error до самого вызывающего
			name: "wrapped by repository",
			err:  fmt.Errorf("%w: GetByIDs - execute query: %w", errBuild, &pq.Error{Code: "40001"}),
			want: true,
		},
		{
			name: "wrapped by repository and usecase",
			err: fmt.Errorf("%w: failed to get slots: %w", errInternal,
				fmt.Errorf("%w: GetByIDs - execute query: %w", errBuild, &pq.Error{Code: "40001"})),
			want: true,
		},
		{
			name: "unrelated pq error",
			err:  &pq.Error{Code: "23505"},
			want: false,
		},
		{
			name: "non-pq error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSerializationFailure(tt.err))
		})
	}
}
