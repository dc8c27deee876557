package common_test

import (
	"testing"

	"github.com/renewed-app/backend/internal/common"
	"github.com/stretchr/testify/require"
)

func TestPseudonymDeterministic(t *testing.T) {
	require.Equal(t, common.Pseudonym("user1"), common.Pseudonym("user1"))
	require.NotEqual(t, common.Pseudonym("user1"), common.Pseudonym("user2"))
	require.NotContains(t, common.Pseudonym("user1"), "user1")
}
