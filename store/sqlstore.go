package store

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"portfolio/models"
)

// SQLStore is the relational implementation of Store. It is constructed once
// at startup and passed in explicitly; there is no package-level handle.
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) GetProfile() (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Order("id ASC").First(&profile).Error
	if err == gorm.ErrRecordNotFound {
		return nil, storeErr("get profile", ErrNotFound)
	}
	if err != nil {
		return nil, storeErr("get profile", err)
	}
	return &profile, nil
}

// SaveProfile updates the singleton row in place. The first save creates it;
// every later save targets the existing row, never a second one.
func (s *SQLStore) SaveProfile(p *models.Profile) error {
	var existing models.Profile
	err := s.db.Order("id ASC").First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return storeErr("save profile", s.db.Create(p).Error)
	}
	if err != nil {
		return storeErr("save profile", err)
	}
	p.ID = existing.ID
	return storeErr("save profile", s.db.Model(&existing).Updates(ProfilePatch(p)).Error)
}

func (s *SQLStore) ListSkills() ([]models.Skill, error) {
	var skills []models.Skill
	err := s.db.Order("category ASC, proficiency DESC, id ASC").Find(&skills).Error
	return skills, storeErr("list skills", err)
}

func (s *SQLStore) CreateSkill(skill *models.Skill) (uint, error) {
	if err := s.db.Create(skill).Error; err != nil {
		return 0, storeErr("create skill", err)
	}
	return skill.ID, nil
}

func (s *SQLStore) UpdateSkill(id uint, patch map[string]interface{}) error {
	return s.update("update skill", &models.Skill{}, id, patch)
}

func (s *SQLStore) DeleteSkill(id uint) error {
	return s.delete("delete skill", &models.Skill{}, id)
}

func (s *SQLStore) ListProjects() ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Order("sort_order ASC, id ASC").Find(&projects).Error
	return projects, storeErr("list projects", err)
}

func (s *SQLStore) CreateProject(project *models.Project) (uint, error) {
	if err := s.db.Create(project).Error; err != nil {
		return 0, storeErr("create project", err)
	}
	return project.ID, nil
}

func (s *SQLStore) UpdateProject(id uint, patch map[string]interface{}) error {
	return s.update("update project", &models.Project{}, id, patch)
}

func (s *SQLStore) DeleteProject(id uint) error {
	return s.delete("delete project", &models.Project{}, id)
}

func (s *SQLStore) ListCertificates() ([]models.Certificate, error) {
	var certificates []models.Certificate
	err := s.db.Order("sort_order ASC, id ASC").Find(&certificates).Error
	return certificates, storeErr("list certificates", err)
}

func (s *SQLStore) CreateCertificate(certificate *models.Certificate) (uint, error) {
	if err := s.db.Create(certificate).Error; err != nil {
		return 0, storeErr("create certificate", err)
	}
	return certificate.ID, nil
}

func (s *SQLStore) UpdateCertificate(id uint, patch map[string]interface{}) error {
	return s.update("update certificate", &models.Certificate{}, id, patch)
}

func (s *SQLStore) DeleteCertificate(id uint) error {
	return s.delete("delete certificate", &models.Certificate{}, id)
}

func (s *SQLStore) ListJourneyItems() ([]models.JourneyItem, error) {
	var items []models.JourneyItem
	err := s.db.Order("sort_order ASC, id ASC").Find(&items).Error
	return items, storeErr("list journey items", err)
}

func (s *SQLStore) CreateJourneyItem(item *models.JourneyItem) (uint, error) {
	if err := s.db.Create(item).Error; err != nil {
		return 0, storeErr("create journey item", err)
	}
	return item.ID, nil
}

func (s *SQLStore) UpdateJourneyItem(id uint, patch map[string]interface{}) error {
	return s.update("update journey item", &models.JourneyItem{}, id, patch)
}

func (s *SQLStore) DeleteJourneyItem(id uint) error {
	return s.delete("delete journey item", &models.JourneyItem{}, id)
}

func (s *SQLStore) ListMessages() ([]models.Message, error) {
	var messages []models.Message
	err := s.db.Order("created_at DESC, id DESC").Find(&messages).Error
	return messages, storeErr("list messages", err)
}

func (s *SQLStore) CreateMessage(message *models.Message) (uint, error) {
	if err := s.db.Create(message).Error; err != nil {
		return 0, storeErr("create message", err)
	}
	return message.ID, nil
}

func (s *SQLStore) SetMessageRead(id uint, read bool) error {
	return s.update("set message read", &models.Message{}, id, map[string]interface{}{"read": read})
}

func (s *SQLStore) DeleteMessage(id uint) error {
	return s.delete("delete message", &models.Message{}, id)
}

// update applies a partial patch. An empty patch is a no-op by contract, so
// the stored record is left untouched without a round trip.
func (s *SQLStore) update(op string, model interface{}, id uint, patch map[string]interface{}) error {
	if len(patch) == 0 {
		return nil
	}
	result := s.db.Model(model).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return storeErr(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return storeErr(op, errors.Wrapf(ErrNotFound, "id %d", id))
	}
	return nil
}

func (s *SQLStore) delete(op string, model interface{}, id uint) error {
	result := s.db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return storeErr(op, result.Error)
	}
	if result.RowsAffected == 0 {
		return storeErr(op, errors.Wrapf(ErrNotFound, "id %d", id))
	}
	return nil
}
