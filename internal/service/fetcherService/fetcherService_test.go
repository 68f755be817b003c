package fetcherService

import (
	"context"
	"errors"
	"testing"

	"opening_quiz/config"
	"opening_quiz/internal/dataset"
	"opening_quiz/internal/externalApi/gutendexApi"
	"opening_quiz/internal/service/fetcherService/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type fetcherServiceSuite struct {
	suite.Suite

	mockCtrl   *gomock.Controller
	cfg        *config.Config
	catalogApi *mocks.MockCatalogApi
	downloader *mocks.MockTextDownloader
	service    *FetcherService
}

func TestFetcherServiceSuite(t *testing.T) {
	suite.Run(t, new(fetcherServiceSuite))
}

func (s *fetcherServiceSuite) SetupSuite() {
	s.mockCtrl = gomock.NewController(s.T())
}

func (s *fetcherServiceSuite) SetupTest() {
	s.cfg = &config.Config{
		Data: config.Data{
			Dir:           s.T().TempDir(),
			OriginalsFile: "original_openings.jsonl",
			GeneratedFile: "generated_openings.jsonl",
			MetadataFile:  "book_metadata.json",
		},
	}
	s.catalogApi = mocks.NewMockCatalogApi(s.mockCtrl)
	s.downloader = mocks.NewMockTextDownloader(s.mockCtrl)

	s.service = New(s.cfg, s.catalogApi, s.downloader)
}

func bookFixture(id int, title string) gutendexApi.Book {
	return gutendexApi.Book{
		ID:        id,
		Title:     title,
		Languages: []string{"en"},
		Authors:   []gutendexApi.Author{{Name: "Melville, Herman"}},
		Subjects:  []string{"Sea stories"},
		Formats: map[string]string{
			"text/plain; charset=utf-8": "https://x/" + title + ".txt",
		},
	}
}

func (s *fetcherServiceSuite) Test_CollectBooks_ScreensCatalog() {
	s.service.catalog = []authorConfig{
		{Name: "Herman Melville", Exclude: []string{"Moby Dick"}, Target: 2},
	}
	ctx := context.Background()

	excluded := bookFixture(1, "Moby Dick")
	wrongLang := bookFixture(2, "Mardi")
	wrongLang.Languages = []string{"fr"}
	wrongAuthor := bookFixture(3, "The Scarlet Letter")
	wrongAuthor.Authors = []gutendexApi.Author{{Name: "Hawthorne, Nathaniel"}}
	noText := bookFixture(4, "Pierre")
	noText.Formats = map[string]string{"application/epub+zip": "https://x/pierre.epub"}
	goodA := bookFixture(5, "Redburn")
	goodB := bookFixture(6, "Israel Potter")

	s.catalogApi.EXPECT().
		SearchUrl("Herman Melville").
		Return("https://g/books?search=melville")

	s.catalogApi.EXPECT().
		GetPage(ctx, "https://g/books?search=melville").
		Return([]gutendexApi.Book{excluded, wrongLang, wrongAuthor, noText, goodA}, "https://g/books?page=2", nil)

	s.catalogApi.EXPECT().
		GetPage(ctx, "https://g/books?page=2").
		Return([]gutendexApi.Book{goodB}, "", nil)

	records, err := s.service.CollectBooks(ctx, 100, 42)

	assert.Nil(s.T(), err)
	assert.Len(s.T(), records, 2)
	assert.Equal(s.T(), "Redburn", records[0].Title)
	assert.Equal(s.T(), "Herman Melville", records[0].Author)
	assert.Equal(s.T(), "https://www.gutenberg.org/ebooks/5", records[0].GutendexUrl)
	assert.Equal(s.T(), "https://x/Redburn.txt", records[0].DownloadUrl)
	assert.Equal(s.T(), "Israel Potter", records[1].Title)
}

func (s *fetcherServiceSuite) Test_CollectBooks_StopsAtTargetWithoutNextPage() {
	s.service.catalog = []authorConfig{
		{Name: "Herman Melville", Target: 1},
	}
	ctx := context.Background()

	s.catalogApi.EXPECT().
		SearchUrl("Herman Melville").
		Return("https://g/p1")

	s.catalogApi.EXPECT().
		GetPage(ctx, "https://g/p1").
		Return([]gutendexApi.Book{bookFixture(1, "Redburn"), bookFixture(2, "Pierre")}, "https://g/p2", nil)

	records, err := s.service.CollectBooks(ctx, 100, 42)

	assert.Nil(s.T(), err)
	assert.Len(s.T(), records, 1)
}

func (s *fetcherServiceSuite) Test_CollectBooks_TrimsToLimitDeterministically() {
	s.service.catalog = []authorConfig{
		{Name: "Herman Melville", Target: 5},
	}
	ctx := context.Background()

	books := []gutendexApi.Book{
		bookFixture(1, "One"),
		bookFixture(2, "Two"),
		bookFixture(3, "Three"),
		bookFixture(4, "Four"),
		bookFixture(5, "Five"),
	}

	s.catalogApi.EXPECT().SearchUrl("Herman Melville").Return("https://g/p1").Times(2)
	s.catalogApi.EXPECT().GetPage(ctx, "https://g/p1").Return(books, "", nil).Times(2)

	first, err := s.service.CollectBooks(ctx, 3, 42)
	assert.Nil(s.T(), err)
	assert.Len(s.T(), first, 3)

	second, err := s.service.CollectBooks(ctx, 3, 42)
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), first, second)
}

func (s *fetcherServiceSuite) Test_CollectBooks_CatalogErr() {
	s.service.catalog = []authorConfig{
		{Name: "Herman Melville", Target: 1},
	}
	ctx := context.Background()

	s.catalogApi.EXPECT().SearchUrl("Herman Melville").Return("https://g/p1")
	s.catalogApi.EXPECT().
		GetPage(ctx, "https://g/p1").
		Return(nil, "", errors.New("gutendex is down"))

	records, err := s.service.CollectBooks(ctx, 100, 42)

	assert.NotNil(s.T(), err)
	assert.Nil(s.T(), records)
}

func (s *fetcherServiceSuite) Test_Run_WritesMetadataAndOpenings() {
	s.service.catalog = []authorConfig{
		{Name: "Herman Melville", Target: 1},
	}
	ctx := context.Background()

	s.catalogApi.EXPECT().SearchUrl("Herman Melville").Return("https://g/p1")
	s.catalogApi.EXPECT().
		GetPage(ctx, "https://g/p1").
		Return([]gutendexApi.Book{bookFixture(7, "Redburn")}, "", nil)

	body := "*** START OF THE PROJECT GUTENBERG EBOOK REDBURN ***\n\nFirst paragraph of the novel.\n\n*** END OF THE PROJECT GUTENBERG EBOOK REDBURN ***"
	s.downloader.EXPECT().
		DownloadText(ctx, "https://x/Redburn.txt").
		Return(body, nil)

	err := s.service.Run(ctx, FetchParams{Limit: 100, MaxWords: 500, Seed: 42})
	assert.Nil(s.T(), err)

	records, err := dataset.LoadRecords(s.cfg.OriginalsPath())
	assert.Nil(s.T(), err)
	assert.Len(s.T(), records, 1)
	assert.Contains(s.T(), records["7"].OriginalOpening, "First paragraph of the novel.")

	assert.FileExists(s.T(), s.cfg.MetadataPath())
}

func (s *fetcherServiceSuite) Test_Run_DownloadFailureWritesMarker() {
	s.service.catalog = []authorConfig{
		{Name: "Herman Melville", Target: 1},
	}
	ctx := context.Background()

	s.catalogApi.EXPECT().SearchUrl("Herman Melville").Return("https://g/p1")
	s.catalogApi.EXPECT().
		GetPage(ctx, "https://g/p1").
		Return([]gutendexApi.Book{bookFixture(7, "Redburn")}, "", nil)

	s.downloader.EXPECT().
		DownloadText(ctx, "https://x/Redburn.txt").
		Return("", errors.New("timeout"))

	err := s.service.Run(ctx, FetchParams{Limit: 100, MaxWords: 500, Seed: 42})
	assert.Nil(s.T(), err)

	records, err := dataset.LoadRecords(s.cfg.OriginalsPath())
	assert.Nil(s.T(), err)
	assert.Equal(s.T(), dataset.NoTextMarker, records["7"].OriginalOpening)
}
