package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"parentsguide-srv/internal/advisory"
	"parentsguide-srv/internal/model"
	"parentsguide-srv/internal/rating"
	"parentsguide-srv/internal/rating/repository"
	"parentsguide-srv/pkg/log"
)

type stubFetcher struct {
	calls atomic.Int32
	delay time.Duration
	fn    func(contentID string) (advisory.Advisory, error)
}

func (s *stubFetcher) FetchAdvisory(_ context.Context, contentID string) (advisory.Advisory, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.fn(contentID)
}

func (s *stubFetcher) FetchPopular(context.Context, advisory.Kind) ([]advisory.Title, error) {
	return nil, nil
}

func (s *stubFetcher) Search(context.Context, string, advisory.Kind) ([]advisory.Title, error) {
	return nil, nil
}

func (s *stubFetcher) FetchEpisodeID(context.Context, string, int, int) (string, error) {
	return "", nil
}

type stubRepo struct {
	mu    sync.Mutex
	data  map[string]model.RatingResult
	saves int
}

func newStubRepo() *stubRepo {
	return &stubRepo{data: map[string]model.RatingResult{}}
}

func (r *stubRepo) GetResult(_ context.Context, id string) (model.RatingResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.data[id]
	if !ok {
		return model.RatingResult{}, repository.ErrCacheMiss
	}
	return v, nil
}

func (r *stubRepo) SaveResult(_ context.Context, result model.RatingResult, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[result.ContentID] = result
	r.saves++
	return nil
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func sampleAdvisory(contentID string) (advisory.Advisory, error) {
	return advisory.Advisory{
		ContentID: contentID,
		Title:     "Sample",
		Categories: map[model.Category]advisory.CategoryAdvisory{
			model.CategoryNudity:      {Items: []string{"mild suggestive content"}},
			model.CategoryViolence:    {Items: []string{"no violence"}},
			model.CategoryProfanity:   {},
			model.CategoryFrightening: {},
			model.CategoryAlcohol:     {},
		},
		Certificates: model.CertificateMap{{Country: "United States", Rating: "PG-13"}},
	}, nil
}

func newTestUseCase(f advisory.Fetcher, repo repository.CacheRepository, c *clock) rating.UseCase {
	cfg := Config{CacheTTL: time.Hour}
	if c != nil {
		cfg.Now = c.Now
	}
	return New(f, repo, log.NewNop(), cfg)
}

func TestGetRatingSample(t *testing.T) {
	f := &stubFetcher{fn: sampleAdvisory}
	uc := newTestUseCase(f, nil, nil)

	r, err := uc.GetRating(context.Background(), "tt0000001")
	require.NoError(t, err)

	require.Equal(t, "Sample", r.Title)
	require.Equal(t, 5, r.Score)
	require.Equal(t, 10, r.ContentAge)
	require.NotNil(t, r.CertificateAge)
	require.Equal(t, 13, *r.CertificateAge)
	require.Equal(t, 12, r.AgeRating)
	require.Equal(t, []model.Reason{
		{Category: model.CategoryNudity, Severity: model.SeverityMild},
		{Category: model.CategoryProfanity, Severity: model.SeverityMinimal},
		{Category: model.CategoryFrightening, Severity: model.SeverityMinimal},
		{Category: model.CategoryAlcohol, Severity: model.SeverityMinimal},
	}, r.Reasons)
	require.False(t, r.Degraded)
}

func TestGetRatingVoteWinsOverText(t *testing.T) {
	f := &stubFetcher{fn: func(id string) (advisory.Advisory, error) {
		return advisory.Advisory{
			ContentID: id,
			Title:     "Voted",
			Categories: map[model.Category]advisory.CategoryAdvisory{
				model.CategoryViolence: {Items: []string{"no blood shown"}, Vote: "Severe"},
			},
		}, nil
	}}
	uc := newTestUseCase(f, nil, nil)

	r, err := uc.GetRating(context.Background(), "tt1")
	require.NoError(t, err)
	require.Equal(t, model.SeverityStrong, r.ContentCategories[model.CategoryViolence])
	require.Equal(t, 10, r.AgeRating)
}

func TestGetRatingSingleFlight(t *testing.T) {
	f := &stubFetcher{fn: sampleAdvisory, delay: 50 * time.Millisecond}
	uc := newTestUseCase(f, nil, nil)

	const callers = 16
	ages := make([]int, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := uc.GetRating(context.Background(), "tt0000001")
			ages[i], errs[i] = r.AgeRating, err
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, 12, ages[i])
	}

	require.Equal(t, int32(1), f.calls.Load())

	_, err := uc.GetRating(context.Background(), "tt0000002")
	require.NoError(t, err)
	require.Equal(t, int32(2), f.calls.Load())
}

func TestGetRatingFetchFailureDegradesAndCaches(t *testing.T) {
	f := &stubFetcher{fn: func(string) (advisory.Advisory, error) {
		return advisory.Advisory{}, advisory.ErrFetchFailed
	}}
	uc := newTestUseCase(f, nil, nil)

	r, err := uc.GetRating(context.Background(), "tt404")
	require.NoError(t, err)
	require.True(t, r.Degraded)
	require.Equal(t, 6, r.AgeRating)
	require.Equal(t, advisory.UnknownTitle, r.Title)
	require.Empty(t, r.Reasons)

	_, err = uc.GetRating(context.Background(), "tt404")
	require.NoError(t, err)
	require.Equal(t, int32(1), f.calls.Load())
}

func TestGetRatingNoAdvisoryKeepsTitle(t *testing.T) {
	f := &stubFetcher{fn: func(id string) (advisory.Advisory, error) {
		return advisory.Advisory{ContentID: id, Title: "Obscure Short"}, advisory.ErrNoAdvisory
	}}
	uc := newTestUseCase(f, nil, nil)

	r, err := uc.GetRating(context.Background(), "tt5")
	require.NoError(t, err)
	require.True(t, r.Degraded)
	require.Equal(t, "Obscure Short", r.Title)
}

func TestGetRatingExpiresAfterTTL(t *testing.T) {
	c := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	f := &stubFetcher{fn: sampleAdvisory}
	uc := newTestUseCase(f, nil, c)

	first, err := uc.GetRating(context.Background(), "tt0000001")
	require.NoError(t, err)

	c.Advance(30 * time.Minute)
	_, err = uc.GetRating(context.Background(), "tt0000001")
	require.NoError(t, err)
	require.Equal(t, int32(1), f.calls.Load())

	c.Advance(31 * time.Minute)
	second, err := uc.GetRating(context.Background(), "tt0000001")
	require.NoError(t, err)
	require.Equal(t, int32(2), f.calls.Load())
	require.True(t, second.ComputedAt.After(first.ComputedAt))
}

func TestGetRatingInvalidID(t *testing.T) {
	uc := newTestUseCase(&stubFetcher{fn: sampleAdvisory}, nil, nil)
	_, err := uc.GetRating(context.Background(), "  ")
	require.ErrorIs(t, err, rating.ErrInvalidContentID)
}

func TestGetRatingComputeFailureNotCached(t *testing.T) {
	f := &stubFetcher{fn: func(id string) (advisory.Advisory, error) {
		return advisory.Advisory{
			ContentID:  id,
			Categories: map[model.Category]advisory.CategoryAdvisory{"drugs": {Items: []string{"some"}}},
		}, nil
	}}
	uc := newTestUseCase(f, nil, nil)

	_, err := uc.GetRating(context.Background(), "tt9")
	require.ErrorIs(t, err, rating.ErrComputeFailed)

	_, err = uc.GetRating(context.Background(), "tt9")
	require.Error(t, err)
	require.Equal(t, int32(2), f.calls.Load())
}

func TestGetRatingUsesSharedCache(t *testing.T) {
	repo := newStubRepo()
	repo.data["tt7"] = model.RatingResult{ContentID: "tt7", Title: "From Redis", AgeRating: 16}
	f := &stubFetcher{fn: sampleAdvisory}
	uc := newTestUseCase(f, repo, nil)

	r, err := uc.GetRating(context.Background(), "tt7")
	require.NoError(t, err)
	require.Equal(t, "From Redis", r.Title)
	require.Equal(t, int32(0), f.calls.Load())

	_, err = uc.GetRating(context.Background(), "tt0000001")
	require.NoError(t, err)
	require.Equal(t, 1, repo.saves)
	require.Equal(t, 12, repo.data["tt0000001"].AgeRating)
}

func TestGetRatingReturnsIndependentCopies(t *testing.T) {
	uc := newTestUseCase(&stubFetcher{fn: sampleAdvisory}, nil, nil)

	r, err := uc.GetRating(context.Background(), "tt0000001")
	require.NoError(t, err)
	r.ContentCategories[model.CategoryNudity] = model.SeverityStrong
	r.Reasons[0].Severity = model.SeverityStrong

	again, err := uc.GetRating(context.Background(), "tt0000001")
	require.NoError(t, err)
	require.Equal(t, model.SeverityMild, again.ContentCategories[model.CategoryNudity])
	require.Equal(t, model.SeverityMild, again.Reasons[0].Severity)
}

func TestRate(t *testing.T) {
	uc := newTestUseCase(&stubFetcher{fn: sampleAdvisory}, nil, nil)

	r, err := uc.Rate(context.Background(), rating.RateInput{
		Title:        "Adhoc",
		Categories:   map[string]string{"Violence": "graphic battle", "nudity": "explicit"},
		Votes:        map[string]string{"alcohol": "moderate"},
		Certificates: model.CertificateMap{{Country: "UK", Rating: "18"}},
	})
	require.NoError(t, err)
	require.Equal(t, 11, r.Score)
	require.Equal(t, 16, r.ContentAge)
	require.Equal(t, 17, r.AgeRating)
}

func TestRateRejectsUnknownInput(t *testing.T) {
	uc := newTestUseCase(&stubFetcher{fn: sampleAdvisory}, nil, nil)

	_, err := uc.Rate(context.Background(), rating.RateInput{Categories: map[string]string{"drugs": "some"}})
	require.ErrorIs(t, err, rating.ErrInvalidInput)

	_, err = uc.Rate(context.Background(), rating.RateInput{Votes: map[string]string{"nudity": "lots"}})
	require.ErrorIs(t, err, rating.ErrInvalidInput)
}

func TestRateDoesNotFetch(t *testing.T) {
	f := &stubFetcher{fn: func(string) (advisory.Advisory, error) {
		return advisory.Advisory{}, errors.New("should not be called")
	}}
	uc := newTestUseCase(f, nil, nil)

	r, err := uc.Rate(context.Background(), rating.RateInput{})
	require.NoError(t, err)
	require.True(t, r.Degraded)
	require.Equal(t, int32(0), f.calls.Load())
}
