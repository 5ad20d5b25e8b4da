package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFooter(t *testing.T) {
	assert.Empty(t, Footer())
	assert.Contains(t, Footer("enter: confirm", "esc: cancel"), "enter: confirm  •  esc: cancel")
}
