package test_test

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/golang/mock/gomock"
	"github.com/loopcontext/xcmerge"
	mock_xcmerge "github.com/loopcontext/xcmerge/test/mock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func writeTable(dir string, name string, content string) {
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)
	Expect(err).NotTo(HaveOccurred())
}

var _ = Describe("Catalog merge", func() {
	var tmpDir string
	var cfg xcmerge.Config

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "xcmerge-suite-*")
		Expect(err).NotTo(HaveOccurred())

		writeTable(tmpDir, "en.json", `{
  "greeting": "Hello {0}, you have {1} items",
  "farewell": "Goodbye",
  "only.en": "Only English"
}`)
		writeTable(tmpDir, "ja.json", `{
  "greeting": "{1}件、{0}さん",
  "farewell": "さようなら",
  "only.ja": "日本語だけ"
}`)
		writeTable(tmpDir, "zh-Hans.json", `{
  "greeting": "你好 {0}，你有 {1} 件物品"
}`)

		cfg = xcmerge.Config{
			InputDir: tmpDir,
			Output:   filepath.Join(tmpDir, "Localizable.xcstrings"),
		}
	})

	AfterEach(func() {
		_ = os.RemoveAll(tmpDir)
	})

	It("should key entries by the source text with indices stripped", func() {
		result, err := xcmerge.Merge(cfg)
		Expect(err).NotTo(HaveOccurred())

		entry, found := result.Catalog.Strings["Hello %@, you have %@ items"]
		Expect(found).To(BeTrue())
		Expect(entry.Comment).To(Equal("greeting"))
		Expect(entry.Localizations["en"].StringUnit).To(Equal(xcmerge.StringUnit{State: xcmerge.StateNew, Value: "Hello %1$@, you have %2$@ items"}))
		Expect(entry.Localizations["ja"].StringUnit).To(Equal(xcmerge.StringUnit{State: xcmerge.StateTranslated, Value: "%2$@件、%1$@さん"}))
		Expect(entry.Localizations["zh-Hans"].StringUnit.Value).To(Equal("你好 %1$@，你有 %2$@ 件物品"))
	})

	It("should write the catalog file that reads back identically", func() {
		result, err := xcmerge.Merge(cfg)
		Expect(err).NotTo(HaveOccurred())

		written, err := xcmerge.ReadFile(cfg.Output)
		Expect(err).NotTo(HaveOccurred())
		Expect(written).To(Equal(result.Catalog))
		Expect(written.Version).To(Equal("1.0"))
		Expect(written.SourceLanguage).To(Equal("en"))
	})

	It("should keep non-ASCII text literal in the output", func() {
		_, err := xcmerge.Merge(cfg)
		Expect(err).NotTo(HaveOccurred())

		content, err := os.ReadFile(cfg.Output)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("さようなら"))
		Expect(string(content)).NotTo(ContainSubstring(`\u`))
	})

	It("should produce byte-identical output on repeated runs", func() {
		_, err := xcmerge.Merge(cfg)
		Expect(err).NotTo(HaveOccurred())
		first, err := os.ReadFile(cfg.Output)
		Expect(err).NotTo(HaveOccurred())

		_, err = xcmerge.Merge(cfg)
		Expect(err).NotTo(HaveOccurred())
		second, err := os.ReadFile(cfg.Output)
		Expect(err).NotTo(HaveOccurred())

		Expect(second).To(Equal(first))
	})

	It("should have one comment per key in the union of all tables", func() {
		writeTable(tmpDir, "ja.json", `{"greeting": "{1}件、{0}さん", "only.ja": "日本語だけ"}`)
		writeTable(tmpDir, "en.json", `{"greeting": "Hello {0}, you have {1} items", "farewell": "Goodbye"}`)

		result, err := xcmerge.Merge(cfg)
		Expect(err).NotTo(HaveOccurred())

		comments := []string{}
		for _, entry := range result.Catalog.Strings {
			comments = append(comments, entry.Comment)
		}
		sort.Strings(comments)
		Expect(comments).To(Equal([]string{"farewell", "greeting", "only.ja"}))
		Expect(result.Stats.SourceMissing).To(Equal([]string{"only.ja"}))
	})

	It("should tolerate a missing language file", func() {
		Expect(os.Remove(filepath.Join(tmpDir, "zh-Hans.json"))).To(Succeed())

		result, err := xcmerge.Merge(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Skipped).To(Equal([]string{"zh-Hans"}))
		Expect(result.Loaded).To(Equal([]string{"en", "ja"}))
		for _, entry := range result.Catalog.Strings {
			Expect(entry.Localizations).NotTo(HaveKey("zh-Hans"))
		}
	})

	It("should fail with a parse error on a non-flat table", func() {
		writeTable(tmpDir, "ja.json", `{"greeting": {"text": "こんにちは"}}`)

		_, err := xcmerge.Merge(cfg)
		var parseErr *xcmerge.ParseError
		Expect(errors.As(err, &parseErr)).To(BeTrue())
		Expect(parseErr.Lang).To(Equal("ja"))
		_, statErr := os.Stat(cfg.Output)
		Expect(os.IsNotExist(statErr)).To(BeTrue())
	})

	It("should read the language list from injected config", func() {
		writeTable(tmpDir, "french.json", `{"greeting": "Bonjour {0}, {1} articles"}`)
		cfg.Languages = []xcmerge.LanguageFile{
			{Code: "en", File: "en.json"},
			{Code: "fr", File: "french.json"},
		}

		result, err := xcmerge.Assemble(cfg)
		Expect(err).NotTo(HaveOccurred())
		entry := result.Catalog.Strings["Hello %@, you have %@ items"]
		Expect(entry.Localizations).To(HaveLen(2))
		Expect(entry.Localizations["fr"].StringUnit.Value).To(Equal("Bonjour %1$@, %2$@ articles"))
	})

	Context("with colliding source text", func() {
		BeforeEach(func() {
			writeTable(tmpDir, "en.json", `{"a.title": "Title {0}", "b.title": "Title {1}"}`)
			writeTable(tmpDir, "ja.json", `{"b.title": "タイトル"}`)
			Expect(os.Remove(filepath.Join(tmpDir, "zh-Hans.json"))).To(Succeed())
		})

		It("should report the collision to the observer and keep the last key", func() {
			ctrl := gomock.NewController(GinkgoT())
			defer ctrl.Finish()

			observer := mock_xcmerge.NewMockObserver(ctrl)
			observer.EXPECT().OnCollision("Title %@", "b.title", "a.title").Times(1)

			result, err := xcmerge.Merge(cfg, xcmerge.WithObserver(observer))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Catalog.Strings).To(HaveLen(1))
			Expect(result.Catalog.Strings["Title %@"].Comment).To(Equal("b.title"))
		})

		It("should fail under the fail policy without writing output", func() {
			cfg.CollisionPolicy = "fail"

			_, err := xcmerge.Merge(cfg)
			var collisionErr *xcmerge.CollisionError
			Expect(errors.As(err, &collisionErr)).To(BeTrue())
			Expect(collisionErr.Collisions).To(HaveLen(1))
			_, statErr := os.Stat(cfg.Output)
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		})

		It("should let a build option override the configured policy", func() {
			cfg.CollisionPolicy = "fail"

			result, err := xcmerge.Assemble(cfg, xcmerge.WithCollisionPolicy(xcmerge.CollisionOverwrite))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Stats.Collisions).To(HaveLen(1))
		})
	})

	It("should notify the observer about keys missing from the source", func() {
		ctrl := gomock.NewController(GinkgoT())
		defer ctrl.Finish()

		observer := mock_xcmerge.NewMockObserver(ctrl)
		observer.EXPECT().OnSourceMissing("only.ja").Times(1)

		_, err := xcmerge.Assemble(cfg, xcmerge.WithObserver(observer))
		Expect(err).NotTo(HaveOccurred())
	})
})
