package bluemonday_test

import (
	"testing"

	"github.com/fwojciec/seokit"
	"github.com/fwojciec/seokit/bluemonday"
	"github.com/stretchr/testify/assert"
)

func TestSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	s := bluemonday.NewSanitizer()

	t.Run("strips tags", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Hello world", s.Sanitize(`<b>Hello</b> <script>alert(1)</script>world`))
	})

	t.Run("escapes quotes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "say &#34;hi&#34;", s.Sanitize(`say "hi"`))
	})

	t.Run("collapses newlines", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "one two", s.Sanitize("one\n\ntwo "))
	})

	t.Run("keeps ampersands single encoded", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Tom &amp; Jerry", s.Sanitize("Tom & Jerry"))
	})

	t.Run("sanitized values cannot break out of builder attributes", func(t *testing.T) {
		t.Parallel()

		b := seokit.NewBuilder(nil, nil)
		b.SetDescription(s.Sanitize(`"><script>x</script>`))

		assert.Equal(t, `<meta name="description" content="&#34;&gt;">`, b.Description())
	})
}
