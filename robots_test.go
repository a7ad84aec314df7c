package seokit_test

import (
	"testing"

	"github.com/fwojciec/seokit"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_Robots(t *testing.T) {
	t.Parallel()

	t.Run("renders blocks in fixed order", func(t *testing.T) {
		t.Parallel()

		b := seokit.NewBuilder(nil, nil)
		b.AddSitemap("https://example.com/sitemap.xml")
		b.AddUserAgent("")
		b.AddDisallow("/admin")

		assert.Equal(t, "Sitemap: https://example.com/sitemap.xml\nUser-agent: *\nDisallow: /admin \n", b.Robots())
	})

	t.Run("block order ignores call order", func(t *testing.T) {
		t.Parallel()

		b := seokit.NewBuilder(nil, nil)
		b.AddNoIndex("/tmp")
		b.AddDisallow("")
		b.AddUserAgent("Googlebot")
		b.AddSitemap("https://example.com/a.xml")

		want := "Sitemap: https://example.com/a.xml\n" +
			"User-agent: Googlebot\n" +
			"Disallow: * \n" +
			"Noindex: /tmp \n"
		assert.Equal(t, want, b.Robots())
	})

	t.Run("absent sitemap is skipped", func(t *testing.T) {
		t.Parallel()

		b := seokit.NewBuilder(nil, nil)
		b.AddSitemap("")
		b.AddUserAgent("*")

		assert.Equal(t, "User-agent: *\n", b.Robots())
	})

	t.Run("keeps duplicates in insertion order", func(t *testing.T) {
		t.Parallel()

		b := seokit.NewBuilder(nil, nil)
		b.AddDisallow("/b")
		b.AddDisallow("/a")
		b.AddDisallow("/b")
		b.AddNoIndex("")

		assert.Equal(t, "Disallow: /b \nDisallow: /a \nDisallow: /b \nNoindex:  \n", b.Robots())
	})

	t.Run("empty builder renders nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, seokit.NewBuilder(nil, nil).Robots())
	})
}
