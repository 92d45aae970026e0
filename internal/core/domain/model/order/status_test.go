package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[order.Status]string{
		order.Unknown:   "Unknown",
		order.Confirmed: "Confirmed",
		order.Preparing: "Preparing",
		order.Prepared:  "Prepared",
		order.Shipped:   "Shipped",
		order.Rejected:  "Rejected",
		order.Status(99): "Unknown",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Confirmed, order.Preparing, order.Prepared, order.Shipped, order.Rejected,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(42), order.Status(-1)} {
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Transitions(t *testing.T) {
	all := []order.Status{
		order.Unknown, order.Confirmed, order.Preparing, order.Prepared, order.Shipped, order.Rejected,
	}

	transitions := []struct {
		name     string
		apply    func(order.Status) (order.Status, error)
		from     []order.Status
		expected order.Status
	}{
		{
			name:     "Print",
			apply:    order.Status.Print,
			from:     []order.Status{order.Confirmed},
			expected: order.Preparing,
		},
		{
			name:     "CompletePreparation",
			apply:    order.Status.CompletePreparation,
			from:     []order.Status{order.Preparing},
			expected: order.Prepared,
		},
		{
			name:     "Ship",
			apply:    order.Status.Ship,
			from:     []order.Status{order.Prepared},
			expected: order.Shipped,
		},
		{
			name:     "Return",
			apply:    order.Status.Return,
			from:     []order.Status{order.Shipped},
			expected: order.Confirmed,
		},
		{
			name:     "Reject",
			apply:    order.Status.Reject,
			from:     []order.Status{order.Confirmed, order.Preparing},
			expected: order.Rejected,
		},
		{
			name:     "Retry",
			apply:    order.Status.Retry,
			from:     []order.Status{order.Rejected},
			expected: order.Confirmed,
		},
	}

	for _, tr := range transitions {
		t.Run(tr.name, func(t *testing.T) {
			allowed := make(map[order.Status]bool)
			for _, s := range tr.from {
				allowed[s] = true
			}

			for _, s := range all {
				next, err := tr.apply(s)
				if allowed[s] {
					require.NoError(t, err, "expected %s to allow %s", s, tr.name)
					assert.Equal(t, tr.expected, next)
				} else {
					require.Error(t, err, "expected %s to refuse %s", s, tr.name)
					assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
					assert.Equal(t, order.Status(0), next)
				}
			}
		})
	}
}

func TestStatus_ValidateAssignCarrier(t *testing.T) {
	t.Run("should allow assignment while confirmed", func(t *testing.T) {
		require.NoError(t, order.Confirmed.ValidateAssignCarrier())
	})

	t.Run("should refuse assignment in any other state", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Unknown, order.Preparing, order.Prepared, order.Shipped, order.Rejected,
		} {
			require.Error(t, s.ValidateAssignCarrier())
		}
	})
}
