package services_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kaplat/book-server/internal/logging"
	"github.com/kaplat/book-server/internal/models"
	"github.com/kaplat/book-server/internal/services"
	srvErrors "github.com/kaplat/book-server/pkg/errors"
)

var _ = Describe("LogLevelService", func() {
	var (
		registry *logging.Registry
		srv      *services.LogLevelService
	)

	BeforeEach(func() {
		var err error
		registry, err = logging.NewRegistry(logging.FormatConsole,
			logging.LoggerConfig{Name: models.RequestLoggerName, Level: models.LogLevelInfo},
			logging.LoggerConfig{Name: models.BooksLoggerName, Level: models.LogLevelInfo},
		)
		Expect(err).NotTo(HaveOccurred())
		srv = services.NewLogLevelService(registry)
	})

	AfterEach(func() {
		registry.Close()
	})

	It("should return the current level", func() {
		level, err := srv.Get(models.BooksLoggerName)
		Expect(err).NotTo(HaveOccurred())
		Expect(level).To(Equal(models.LogLevelInfo))
	})

	It("should set and report a new level", func() {
		level, err := srv.Set(models.RequestLoggerName, "DEBUG")
		Expect(err).NotTo(HaveOccurred())
		Expect(level).To(Equal(models.LogLevelDebug))

		level, err = srv.Get(models.RequestLoggerName)
		Expect(err).NotTo(HaveOccurred())
		Expect(level).To(Equal(models.LogLevelDebug))
	})

	It("should fail for an unknown logger", func() {
		_, err := srv.Get("root")
		Expect(err).To(MatchError("No logger found"))

		_, err = srv.Set("root", "WARN")
		Expect(err).To(MatchError("No logger found"))
	})

	DescribeTable("rejecting level names outside the allow-list",
		func(level string) {
			_, err := srv.Set(models.BooksLoggerName, level)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
			Expect(err).To(MatchError("No level found"))

			current, err := srv.Get(models.BooksLoggerName)
			Expect(err).NotTo(HaveOccurred())
			Expect(current).To(Equal(models.LogLevelInfo))
		},
		Entry("lower case", "debug"),
		Entry("unknown", "VERBOSE"),
		Entry("empty", ""),
	)

	It("should check the level before the logger", func() {
		_, err := srv.Set("root", "verbose")
		Expect(err).To(MatchError("No level found"))
	})
})
