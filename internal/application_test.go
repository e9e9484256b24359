package application

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mancala/internal/config"
	"github.com/rocketscienceinc/mancala/internal/mancala"
	"github.com/rocketscienceinc/mancala/testing/suite"
)

func TestRun(t *testing.T) {
	t.Run("Plays the configured variant", func(t *testing.T) {
		// Given: an Ayo configuration and a player who moves once then quits
		ctx, st := suite.New(t)
		conf := &config.Config{
			Variant:      mancala.VariantAyo,
			StonesPerPit: 4,
			NoColor:      true,
			Players:      config.Players{One: "ada", Two: "grace"},
		}
		var out bytes.Buffer

		// When: the game runs
		err := Run(ctx, st.Logger, conf, strings.NewReader("3\nq\n"), &out)

		// Then: the move is played and the session ends cleanly
		require.NoError(t, err)
		assert.Contains(t, out.String(), "ada banked 1")
		assert.Contains(t, out.String(), "bye")
	})

	t.Run("Unknown variant", func(t *testing.T) {
		ctx, st := suite.New(t)
		conf := &config.Config{Variant: "oware", NoColor: true}

		err := Run(ctx, st.Logger, conf, strings.NewReader(""), &bytes.Buffer{})

		require.ErrorIs(t, err, mancala.ErrUnknownVariant)
	})
}
