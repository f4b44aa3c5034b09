// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"wenda/internal/models"
	"wenda/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	NumQuestions int
	ShouldClean  bool
	Seed         int64
}

var sexes = []string{"", "male", "female"}

var questionTopics = []string{
	"Go", "数据库", "前端", "后端", "架构", "算法", "云计算", "运维",
	"机器学习", "网络安全", "开源", "职业发展",
}

// Seed populates the database with demo data: users, questions with tags,
// answers, comments and loves.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d questions...", opts.NumUsers, opts.NumQuestions)

	if opts.Seed != 0 {
		gofakeit.Seed(opts.Seed)
	}
	//nolint:gosec // weak randomness is fine for demo data
	r := rand.New(rand.NewSource(opts.Seed + 1))

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway")
		}
	}

	users, err := createUsers(db, opts.NumUsers, r)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	questions, err := createQuestions(db, users, opts.NumQuestions, r)
	if err != nil {
		return fmt.Errorf("failed to create questions: %w", err)
	}
	log.Printf("%d questions created", len(questions))

	answers, err := createAnswers(db, users, questions, r)
	if err != nil {
		return fmt.Errorf("failed to create answers: %w", err)
	}
	log.Printf("%d answers created", len(answers))

	if err := createEngagement(db, users, answers, r); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE answer_loves, answer_collects, question_follows,
		answer_comments, answers, question_tags, questions,
		user_login_histories, user_profiles, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, count int, r *rand.Rand) ([]models.User, error) {
	// One shared hash keeps seeding fast; every demo account logs in with
	// "secret1".
	hash, err := service.HashPassword("secret1")
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		user := models.User{
			Username: seedPhoneNumber(i),
			Nickname: gofakeit.Name(),
			Password: hash,
			Status:   models.UserStatusActive,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}

		profile := models.UserProfile{
			Username: user.Username,
			RealName: gofakeit.Name(),
			Bio:      gofakeit.Sentence(8),
			Sex:      sexes[r.Intn(len(sexes))],
			Address:  gofakeit.City(),
			UserID:   user.ID,
		}
		if err := db.Create(&profile).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// seedPhoneNumber builds deterministic usernames matching the phone format.
func seedPhoneNumber(i int) string {
	return fmt.Sprintf("138%08d", i)
}

func createQuestions(db *gorm.DB, users []models.User, count int, r *rand.Rand) ([]models.Question, error) {
	questions := make([]models.Question, 0, count)
	for i := 0; i < count; i++ {
		author := users[r.Intn(len(users))]
		topic := questionTopics[r.Intn(len(questionTopics))]

		question := models.Question{
			Title:       fmt.Sprintf("如何入门%s？%s", topic, gofakeit.HipsterWord()),
			Description: gofakeit.Sentence(10),
			Content:     gofakeit.Paragraph(2, 4, 12, " "),
			IsValid:     true,
			UserID:      author.ID,
		}
		if err := db.Create(&question).Error; err != nil {
			return nil, err
		}

		for _, name := range seedTags(topic, r) {
			tag := models.QuestionTag{Name: name, IsValid: true, QuestionID: question.ID}
			if err := db.Create(&tag).Error; err != nil {
				return nil, err
			}
		}
		questions = append(questions, question)
	}
	return questions, nil
}

func seedTags(topic string, r *rand.Rand) []string {
	tags := []string{topic}
	for len(tags) < 1+r.Intn(3) {
		extra := questionTopics[r.Intn(len(questionTopics))]
		if !contains(tags, extra) {
			tags = append(tags, extra)
		}
	}
	return tags
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

func createAnswers(db *gorm.DB, users []models.User, questions []models.Question, r *rand.Rand) ([]models.Answer, error) {
	var answers []models.Answer
	for _, question := range questions {
		for i := 0; i < r.Intn(4); i++ {
			author := users[r.Intn(len(users))]
			answer := models.Answer{
				Content:    gofakeit.Paragraph(1, 3, 15, " "),
				IsValid:    true,
				UserID:     author.ID,
				QuestionID: question.ID,
			}
			if err := db.Create(&answer).Error; err != nil {
				return nil, err
			}
			answers = append(answers, answer)
		}
	}
	return answers, nil
}

func createEngagement(db *gorm.DB, users []models.User, answers []models.Answer, r *rand.Rand) error {
	for _, answer := range answers {
		for i := 0; i < r.Intn(5); i++ {
			actor := users[r.Intn(len(users))]

			love := models.AnswerLove{
				UserID:     actor.ID,
				AnswerID:   answer.ID,
				QuestionID: answer.QuestionID,
			}
			if err := db.Create(&love).Error; err != nil {
				return err
			}
		}

		if r.Intn(2) == 0 {
			actor := users[r.Intn(len(users))]
			comment := models.AnswerComment{
				Content:    gofakeit.Sentence(6),
				IsPublic:   true,
				IsValid:    true,
				UserID:     actor.ID,
				AnswerID:   answer.ID,
				QuestionID: answer.QuestionID,
			}
			if err := db.Create(&comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
