package repositories

import (
	"armust-news-cms/models"

	"gorm.io/gorm"
)

type JournalistRepository interface {
	Create(journalist *models.Journalist) error
	GetByID(id uint) (*models.Journalist, error)
	GetByEmail(email string) (*models.Journalist, error)
	GetByUsername(username string) (*models.Journalist, error)
	Update(journalist *models.Journalist) error
	UsernameExists(username string) (bool, error)
	EmailExists(email string) (bool, error)
	ListChildren(orgUsername string, limit int) ([]models.Journalist, error)
}

type journalistRepository struct {
	db *gorm.DB
}

func NewJournalistRepository(db *gorm.DB) JournalistRepository {
	return &journalistRepository{db: db}
}

func (r *journalistRepository) Create(journalist *models.Journalist) error {
	return conflict(r.db.Create(journalist).Error, "username or email already taken")
}

func (r *journalistRepository) GetByID(id uint) (*models.Journalist, error) {
	var journalist models.Journalist
	err := r.db.First(&journalist, id).Error
	return &journalist, err
}

func (r *journalistRepository) GetByEmail(email string) (*models.Journalist, error) {
	var journalist models.Journalist
	err := r.db.Where("lower(email) = lower(?)", email).First(&journalist).Error
	return &journalist, err
}

func (r *journalistRepository) GetByUsername(username string) (*models.Journalist, error) {
	var journalist models.Journalist
	err := r.db.Where("username = ?", username).First(&journalist).Error
	return &journalist, err
}

func (r *journalistRepository) Update(journalist *models.Journalist) error {
	return conflict(r.db.Save(journalist).Error, "username or email already taken")
}

func (r *journalistRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Journalist{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *journalistRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Journalist{}).Where("lower(email) = lower(?)", email).Count(&count).Error
	return count > 0, err
}

// ListChildren returns active accounts onboarded under an organisation,
// matched by the organisation's username.
func (r *journalistRepository) ListChildren(orgUsername string, limit int) ([]models.Journalist, error) {
	var children []models.Journalist
	err := r.db.Where("status = ? AND parent_organisations = ?", models.AccountActive, orgUsername).
		Order("id desc").
		Limit(limit).
		Find(&children).Error
	return children, err
}
