package scheduler_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kaplat/book-server/pkg/scheduler"
)

var _ = Describe("Run", func() {
	var s *scheduler.Scheduler

	BeforeEach(func() {
		s = scheduler.NewScheduler(2)
	})

	AfterEach(func() {
		s.Close()
	})

	It("should return the typed result", func() {
		count, err := scheduler.Run(context.TODO(), s, func(ctx context.Context) (int, error) {
			return 42, nil
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(42))
	})

	It("should return the zero value for a nil pointer result", func() {
		type item struct{ name string }

		got, err := scheduler.Run(context.TODO(), s, func(ctx context.Context) (*item, error) {
			return nil, nil
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeNil())
	})

	It("should return the work error", func() {
		boom := errors.New("boom")

		_, err := scheduler.Run(context.TODO(), s, func(ctx context.Context) (string, error) {
			return "ignored", boom
		})

		Expect(err).To(MatchError(boom))
	})

	// Given a caller whose context ends while its work is queued behind a busy worker
	// When Run is waiting for the result
	// Then Run should return the context error and the work should never run
	It("should abandon queued work when the caller context ends", func() {
		single := scheduler.NewScheduler(1)
		defer single.Close()

		release := make(chan struct{})
		busy := single.AddWork(func(ctx context.Context) (any, error) {
			<-release
			return nil, nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			defer GinkgoRecover()
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		var ran atomic.Bool
		_, err := scheduler.Run(ctx, single, func(workCtx context.Context) (int, error) {
			ran.Store(true)
			return 1, nil
		})
		close(release)
		<-busy.C()

		Expect(err).To(MatchError(context.Canceled))
		Consistently(ran.Load, 100*time.Millisecond).Should(BeFalse())
	})

	// Given work that has already started
	// When the caller context ends before it finishes
	// Then Run should keep waiting and return the real result
	It("should return the result of started work after the caller context ends", func() {
		ctx, cancel := context.WithCancel(context.Background())

		got, err := scheduler.Run(ctx, s, func(workCtx context.Context) (int, error) {
			cancel()
			time.Sleep(50 * time.Millisecond)
			return 7, workCtx.Err()
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(7))
	})

	It("should fail once the scheduler is closed", func() {
		s.Close()

		_, err := scheduler.Run(context.TODO(), s, func(ctx context.Context) (int, error) {
			return 1, nil
		})

		Expect(err).To(MatchError(context.Canceled))
	})
})
