package services

import (
	"encoding/xml"
	"fmt"
	"time"

	"armust-news-cms/models"
	"armust-news-cms/repositories"
)

// Sitemap timestamps are always UTC with an explicit Z designator.
const sitemapTimeLayout = "2006-01-02T15:04:05Z"

const (
	xmlnsSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xmlnsNews    = "http://www.google.com/schemas/sitemap-news/0.9"
	xmlnsImage   = "http://www.google.com/schemas/sitemap-image/1.1"
	xmlnsVideo   = "http://www.google.com/schemas/sitemap-video/1.1"
)

// newsWindow is how far back the Google News sitemap reaches.
const newsWindow = 7 * 24 * time.Hour

type SitemapIndex struct {
	XMLName  xml.Name       `xml:"sitemapindex"`
	Xmlns    string         `xml:"xmlns,attr"`
	Sitemaps []SitemapEntry `xml:"sitemap"`
}

type SitemapEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type URLSet struct {
	XMLName    xml.Name     `xml:"urlset"`
	Xmlns      string       `xml:"xmlns,attr"`
	XmlnsNews  string       `xml:"xmlns:news,attr,omitempty"`
	XmlnsImage string       `xml:"xmlns:image,attr,omitempty"`
	XmlnsVideo string       `xml:"xmlns:video,attr,omitempty"`
	URLs       []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Loc         string     `xml:"loc"`
	LastMod     string     `xml:"lastmod,omitempty"`
	ChangeFreq  string     `xml:"changefreq,omitempty"`
	Priority    string     `xml:"priority,omitempty"`
	Title       string     `xml:"title,omitempty"`
	PublishDate string     `xml:"publish_date,omitempty"`
	News        *NewsTag   `xml:"news:news,omitempty"`
	Images      []ImageTag `xml:"image:image,omitempty"`
	Video       *VideoTag  `xml:"video:video,omitempty"`
}

type NewsTag struct {
	Publication     NewsPublication `xml:"news:publication"`
	PublicationDate string          `xml:"news:publication_date"`
	Title           string          `xml:"news:title"`
}

type NewsPublication struct {
	Name     string `xml:"news:name"`
	Language string `xml:"news:language"`
}

type ImageTag struct {
	Loc string `xml:"image:loc"`
}

type VideoTag struct {
	ThumbnailLoc    string `xml:"video:thumbnail_loc"`
	Title           string `xml:"video:title"`
	Description     string `xml:"video:description"`
	PlayerLoc       string `xml:"video:player_loc"`
	PublicationDate string `xml:"video:publication_date"`
}

// Every section except news is served as a month index plus one map
// per calendar month of the publish date.
type SitemapService interface {
	Index() (*SitemapIndex, error)
	News() (*URLSet, error)
	ImageIndex() (*SitemapIndex, error)
	ImageMonth(year int, month time.Month) (*URLSet, error)
	VideoIndex() (*SitemapIndex, error)
	VideoMonth(year int, month time.Month) (*URLSet, error)
	ArticleIndex() (*SitemapIndex, error)
	ArticleMonth(year int, month time.Month) (*URLSet, error)
	ArchiveIndex() (*SitemapIndex, error)
	ArchiveMonth(year int, month time.Month) (*URLSet, error)
}

type sitemapService struct {
	newsRepo  repositories.NewsRepository
	videoRepo repositories.VideoRepository
	baseURL   string
	siteName  string
}

func NewSitemapService(newsRepo repositories.NewsRepository, videoRepo repositories.VideoRepository, baseURL, siteName string) SitemapService {
	return &sitemapService{
		newsRepo:  newsRepo,
		videoRepo: videoRepo,
		baseURL:   baseURL,
		siteName:  siteName,
	}
}

func sitemapTime(t time.Time) string {
	return t.UTC().Format(sitemapTimeLayout)
}

func (s *sitemapService) abs(path string) string {
	return s.baseURL + path
}

type monthStamp struct {
	published time.Time
	updated   time.Time
}

// monthIndex collapses publish dates into one sitemap entry per
// calendar month, preserving the input order (newest updated first).
func (s *sitemapService) monthIndex(section string, stamps []monthStamp) *SitemapIndex {
	seen := make(map[string]bool)
	index := &SitemapIndex{Xmlns: xmlnsSitemap}
	for _, stamp := range stamps {
		month := stamp.published.UTC().Format("2006-01")
		if seen[month] {
			continue
		}
		seen[month] = true
		index.Sitemaps = append(index.Sitemaps, SitemapEntry{
			Loc:     s.abs("/sitemap/" + section + "/" + month + ".xml"),
			LastMod: sitemapTime(stamp.updated),
		})
	}
	return index
}

func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0).Add(-time.Second)
}

func newsStamps(posts []models.NewsPost) []monthStamp {
	stamps := make([]monthStamp, len(posts))
	for i := range posts {
		stamps[i] = monthStamp{published: posts[i].PostDate, updated: posts[i].UpdatedAt}
	}
	return stamps
}

// Index enumerates the section sitemaps behind /sitemap.xml.
func (s *sitemapService) Index() (*SitemapIndex, error) {
	now := sitemapTime(time.Now())
	sections := []string{
		"/sitemap/news.xml",
		"/sitemap/image.xml",
		"/sitemap/video.xml",
		"/sitemap/article.xml",
		"/sitemap/archive.xml",
	}

	index := &SitemapIndex{Xmlns: xmlnsSitemap}
	for _, section := range sections {
		index.Sitemaps = append(index.Sitemaps, SitemapEntry{
			Loc:     s.abs(section),
			LastMod: now,
		})
	}
	return index, nil
}

// News renders the Google News sitemap: active posts published inside
// the trailing seven-day window, tagged with publication metadata.
func (s *sitemapService) News() (*URLSet, error) {
	from := time.Now().Add(-newsWindow)
	posts, err := s.newsRepo.ListForSitemap(models.SitemapFilter{ActiveOnly: true, From: &from})
	if err != nil {
		return nil, err
	}

	set := &URLSet{Xmlns: xmlnsSitemap, XmlnsNews: xmlnsNews}
	for i := range posts {
		post := &posts[i]
		set.URLs = append(set.URLs, SitemapURL{
			Loc:     s.abs(post.AbsoluteURL()),
			LastMod: sitemapTime(post.UpdatedAt),
			News: &NewsTag{
				Publication:     NewsPublication{Name: s.siteName, Language: "en"},
				PublicationDate: sitemapTime(post.PostDate),
				Title:           post.Title,
			},
		})
	}
	return set, nil
}

func (s *sitemapService) ImageIndex() (*SitemapIndex, error) {
	posts, err := s.newsRepo.ListForSitemap(models.SitemapFilter{ActiveOnly: true, WithImage: true})
	if err != nil {
		return nil, err
	}
	return s.monthIndex("image", newsStamps(posts)), nil
}

func (s *sitemapService) ImageMonth(year int, month time.Month) (*URLSet, error) {
	from, to := monthBounds(year, month)
	posts, err := s.newsRepo.ListForSitemap(models.SitemapFilter{ActiveOnly: true, WithImage: true, From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, models.ErrorNotFound{Message: fmt.Sprintf("no images for %04d-%02d", year, month)}
	}

	set := &URLSet{Xmlns: xmlnsSitemap, XmlnsImage: xmlnsImage}
	for i := range posts {
		post := &posts[i]
		set.URLs = append(set.URLs, SitemapURL{
			Loc:     s.abs(post.AbsoluteURL()),
			LastMod: sitemapTime(post.UpdatedAt),
			Images:  []ImageTag{{Loc: s.abs("/" + post.Image)}},
		})
	}
	return set, nil
}

func (s *sitemapService) VideoIndex() (*SitemapIndex, error) {
	videos, err := s.videoRepo.ListForSitemap(models.SitemapFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}

	stamps := make([]monthStamp, len(videos))
	for i := range videos {
		stamps[i] = monthStamp{published: videos[i].VideoDate, updated: videos[i].UpdatedAt}
	}
	return s.monthIndex("video", stamps), nil
}

func (s *sitemapService) VideoMonth(year int, month time.Month) (*URLSet, error) {
	from, to := monthBounds(year, month)
	videos, err := s.videoRepo.ListForSitemap(models.SitemapFilter{ActiveOnly: true, From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, models.ErrorNotFound{Message: fmt.Sprintf("no videos for %04d-%02d", year, month)}
	}

	set := &URLSet{Xmlns: xmlnsSitemap, XmlnsVideo: xmlnsVideo}
	for i := range videos {
		video := &videos[i]
		description := video.ShortDesc
		if description == "" {
			description = video.Title
		}
		set.URLs = append(set.URLs, SitemapURL{
			Loc:     s.abs(video.AbsoluteURL()),
			LastMod: sitemapTime(video.UpdatedAt),
			Video: &VideoTag{
				ThumbnailLoc:    s.abs("/" + video.Thumbnail),
				Title:           video.Title,
				Description:     description,
				PlayerLoc:       video.WatchURL(),
				PublicationDate: sitemapTime(video.VideoDate),
			},
		})
	}
	return set, nil
}

func (s *sitemapService) ArticleIndex() (*SitemapIndex, error) {
	posts, err := s.newsRepo.ListForSitemap(models.SitemapFilter{ActiveOnly: true, ArticlesOnly: true})
	if err != nil {
		return nil, err
	}
	return s.monthIndex("article", newsStamps(posts)), nil
}

func (s *sitemapService) ArticleMonth(year int, month time.Month) (*URLSet, error) {
	from, to := monthBounds(year, month)
	posts, err := s.newsRepo.ListForSitemap(models.SitemapFilter{ActiveOnly: true, ArticlesOnly: true, From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, models.ErrorNotFound{Message: fmt.Sprintf("no articles for %04d-%02d", year, month)}
	}
	return s.archiveSet(posts), nil
}

// ArchiveIndex lists one sitemap per calendar month with published
// content, newest first.
func (s *sitemapService) ArchiveIndex() (*SitemapIndex, error) {
	posts, err := s.newsRepo.ListForSitemap(models.SitemapFilter{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	return s.monthIndex("archive", newsStamps(posts)), nil
}

func (s *sitemapService) ArchiveMonth(year int, month time.Month) (*URLSet, error) {
	from, to := monthBounds(year, month)
	posts, err := s.newsRepo.ListForSitemap(models.SitemapFilter{ActiveOnly: true, From: &from, To: &to})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, models.ErrorNotFound{Message: fmt.Sprintf("no content archived for %04d-%02d", year, month)}
	}
	return s.archiveSet(posts), nil
}

// archiveSet renders month-map entries carrying the headline and
// publish date alongside the canonical URL.
func (s *sitemapService) archiveSet(posts []models.NewsPost) *URLSet {
	set := &URLSet{Xmlns: xmlnsSitemap}
	for i := range posts {
		post := &posts[i]
		set.URLs = append(set.URLs, SitemapURL{
			Loc:         s.abs(post.AbsoluteURL()),
			LastMod:     sitemapTime(post.UpdatedAt),
			Title:       post.Title,
			PublishDate: sitemapTime(post.PostDate),
		})
	}
	return set
}
