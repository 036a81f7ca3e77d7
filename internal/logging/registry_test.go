package logging_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"

	"github.com/kaplat/book-server/internal/logging"
	"github.com/kaplat/book-server/internal/models"
	srvErrors "github.com/kaplat/book-server/pkg/errors"
)

var _ = Describe("Registry", func() {
	var (
		registry *logging.Registry
		logFile  string
	)

	BeforeEach(func() {
		logFile = filepath.Join(GinkgoT().TempDir(), "books.log")

		var err error
		registry, err = logging.NewRegistry(logging.FormatJSON,
			logging.LoggerConfig{Name: models.RequestLoggerName, Level: models.LogLevelInfo},
			logging.LoggerConfig{Name: models.BooksLoggerName, Level: models.LogLevelWarn, OutputPath: logFile},
		)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		registry.Close()
	})

	It("should report the configured levels", func() {
		level, err := registry.Level(models.RequestLoggerName)
		Expect(err).NotTo(HaveOccurred())
		Expect(level).To(Equal(models.LogLevelInfo))

		level, err = registry.Level(models.BooksLoggerName)
		Expect(err).NotTo(HaveOccurred())
		Expect(level).To(Equal(models.LogLevelWarn))
	})

	It("should fail for an unknown logger", func() {
		_, err := registry.Level("root")
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		Expect(err).To(MatchError("No logger found"))

		err = registry.SetLevel("root", models.LogLevelDebug)
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})

	It("should return a usable logger for an unknown name", func() {
		Expect(registry.Logger("root")).NotTo(BeNil())
	})

	// Given a logger at WARN writing to a file
	// When the level is lowered to TRACE at runtime
	// Then entries below WARN should start reaching the file
	It("should apply level changes to the running logger", func() {
		logger := registry.Logger(models.BooksLoggerName)

		logger.Info("before")
		Expect(registry.SetLevel(models.BooksLoggerName, models.LogLevelTrace)).To(Succeed())
		logger.Info("after")
		if ce := logger.Check(logging.TraceLevel, "traced"); ce != nil {
			ce.Write()
		}
		_ = logger.Sync()

		content, err := os.ReadFile(logFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).NotTo(ContainSubstring(`"before"`))
		Expect(string(content)).To(ContainSubstring(`"after"`))
		Expect(string(content)).To(ContainSubstring(`"level":"TRACE"`))
		Expect(string(content)).To(ContainSubstring(`"logger":"books-logger"`))

		level, err := registry.Level(models.BooksLoggerName)
		Expect(err).NotTo(HaveOccurred())
		Expect(level).To(Equal(models.LogLevelTrace))
	})

	It("should reject an unknown format", func() {
		_, err := logging.NewRegistry("xml")
		Expect(err).To(HaveOccurred())
	})

	It("should reject duplicate logger names", func() {
		_, err := logging.NewRegistry(logging.FormatConsole,
			logging.LoggerConfig{Name: models.BooksLoggerName},
			logging.LoggerConfig{Name: models.BooksLoggerName},
		)
		Expect(err).To(HaveOccurred())
	})

	It("should default an invalid configured level to INFO", func() {
		r, err := logging.NewRegistry(logging.FormatConsole, logging.LoggerConfig{Name: "x", Level: "verbose"})
		Expect(err).NotTo(HaveOccurred())
		defer r.Close()

		level, err := r.Level("x")
		Expect(err).NotTo(HaveOccurred())
		Expect(level).To(Equal(models.LogLevelInfo))
	})
})

var _ = DescribeTable("ZapLevel",
	func(level models.LogLevel, expected zapcore.Level) {
		Expect(logging.ZapLevel(level)).To(Equal(expected))
	},
	Entry("ERROR", models.LogLevelError, zapcore.ErrorLevel),
	Entry("WARN", models.LogLevelWarn, zapcore.WarnLevel),
	Entry("INFO", models.LogLevelInfo, zapcore.InfoLevel),
	Entry("DEBUG", models.LogLevelDebug, zapcore.DebugLevel),
	Entry("TRACE", models.LogLevelTrace, zapcore.Level(-2)),
)
