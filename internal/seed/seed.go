package seed

import (
	"github.com/sirupsen/logrus"

	"github.com/profissaovlog/profissaovlog-api/internal/domain/entity"
	"github.com/profissaovlog/profissaovlog-api/internal/infrastructure/memory"
	"github.com/profissaovlog/profissaovlog-api/pkg/helpers"
)

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

// Categories inserts the fixed profession areas when the store has none.
// It runs on every startup; a store that already has categories is left
// untouched.
func Categories(store *memory.Store, logger *logrus.Logger) error {
	existing, err := store.Categories.GetAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	categories := []entity.Category{
		{Name: "technology", DisplayName: "Tecnologia", Color: "#3A86FF"},
		{Name: "health", DisplayName: "Saúde", Color: "#28A745"},
		{Name: "engineering", DisplayName: "Engenharia", Color: "#FFC107"},
		{Name: "law", DisplayName: "Direito", Color: "#0D47A1"},
		{Name: "education", DisplayName: "Educação", Color: "#6A1B9A"},
		{Name: "marketing", DisplayName: "Marketing", Color: "#DC3545"},
		{Name: "finance", DisplayName: "Finanças", Color: "#198754"},
		{Name: "arts", DisplayName: "Artes", Color: "#F44336"},
	}
	for i := range categories {
		if err := store.Categories.Create(&categories[i]); err != nil {
			return err
		}
	}
	logger.WithField("count", len(categories)).Info("seeded categories")
	return nil
}

// DemoData inserts sample professionals, a student, videos, purchases and
// ratings for local development. It is a no-op when any video already
// exists, so restarts against a persistent store stay idempotent.
func DemoData(store *memory.Store, logger *logrus.Logger) error {
	videos, err := store.Videos.GetAll()
	if err != nil {
		return err
	}
	if len(videos) > 0 {
		return nil
	}

	hash, err := helpers.HashPassword("password123")
	if err != nil {
		return err
	}

	professionals := []*entity.User{
		{
			Name:         "Ricardo Desenvolvedor",
			Email:        "ricardo@example.com",
			Username:     "ricardodev",
			Password:     hash,
			UserType:     entity.UserTypeProfessional,
			Bio:          strptr("Desenvolvedor full-stack com 12 anos de experiência em grandes empresas de tecnologia."),
			Experience:   intptr(12),
			ProfileImage: strptr("https://images.unsplash.com/photo-1568602471122-7832951cc4c5?auto=format&fit=crop&w=300&q=80"),
		},
		{
			Name:         "Ana Engenheira",
			Email:        "ana@example.com",
			Username:     "anaeng",
			Password:     hash,
			UserType:     entity.UserTypeProfessional,
			Bio:          strptr("Engenheira civil especializada em projetos sustentáveis e infraestrutura urbana."),
			Experience:   intptr(8),
			ProfileImage: strptr("https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&w=300&q=80"),
		},
		{
			Name:         "Carlos Médico",
			Email:        "carlos@example.com",
			Username:     "carlosmed",
			Password:     hash,
			UserType:     entity.UserTypeProfessional,
			Bio:          strptr("Médico cardiologista com experiência em hospitais públicos e privados."),
			Experience:   intptr(15),
			ProfileImage: strptr("https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?auto=format&fit=crop&w=300&q=80"),
		},
	}
	for _, pro := range professionals {
		if err := store.Users.Create(pro); err != nil {
			return err
		}
	}

	student := &entity.User{
		Name:         "Maria Estudante",
		Email:        "maria@example.com",
		Username:     "mariaest",
		Password:     hash,
		UserType:     entity.UserTypeStudent,
		Bio:          strptr("Estudante universitária buscando definir sua carreira profissional."),
		ProfileImage: strptr("https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=300&q=80"),
	}
	if err := store.Users.Create(student); err != nil {
		return err
	}

	categories, err := store.Categories.GetAll()
	if err != nil {
		return err
	}
	categoryID := func(name string) int {
		for _, c := range categories {
			if c.Name == name {
				return c.ID
			}
		}
		return 1
	}

	demoVideos := []*entity.Video{
		{
			Title:        "Como é trabalhar com tecnologia em grandes empresas",
			Description:  "Neste vídeo compartilho minha experiência trabalhando em empresas de tecnologia, desde startups até gigantes do setor. Falo sobre a rotina diária, desafios, projetos e como é a progressão de carreira.",
			VideoURL:     "https://player.vimeo.com/video/565490255",
			ThumbnailURL: strptr("https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?auto=format&fit=crop&w=800&q=80"),
			Price:        29.99,
			Duration:     1104,
			UserID:       professionals[0].ID,
			CategoryID:   categoryID("technology"),
		},
		{
			Title:        "Um dia na vida de um engenheiro civil em canteiro de obras",
			Description:  "Acompanhe um dia completo do meu trabalho como engenheira civil em um grande canteiro de obras. Mostro desde as reuniões matinais de planejamento, inspeções de segurança, até os desafios técnicos enfrentados.",
			VideoURL:     "https://player.vimeo.com/video/565490255",
			ThumbnailURL: strptr("https://images.unsplash.com/photo-1541888946425-d81bb19240f5?auto=format&fit=crop&w=800&q=80"),
			Price:        24.99,
			Duration:     1520,
			UserID:       professionals[1].ID,
			CategoryID:   categoryID("engineering"),
		},
		{
			Title:        "Visita ao hospital: rotina de um cardiologista",
			Description:  "Neste vídeo você vai conhecer a rotina de um médico cardiologista em um hospital de referência. Mostro consultas, exames, discussões de casos e os desafios da profissão.",
			VideoURL:     "https://player.vimeo.com/video/565490255",
			ThumbnailURL: strptr("https://images.unsplash.com/photo-1579684385127-1ef15d508118?auto=format&fit=crop&w=800&q=80"),
			Price:        34.99,
			Duration:     1860,
			UserID:       professionals[2].ID,
			CategoryID:   categoryID("health"),
		},
		{
			Title:        "Desenvolvimento de aplicativos mobile: bastidores",
			Description:  "Compartilho todo o processo de desenvolvimento de aplicativos mobile, desde a concepção da ideia até o lançamento nas lojas. Inclui dicas sobre tecnologias, metodologias e cases reais.",
			VideoURL:     "https://player.vimeo.com/video/565490255",
			ThumbnailURL: strptr("https://images.unsplash.com/photo-1555774698-0b77e0d5fac6?auto=format&fit=crop&w=800&q=80"),
			Price:        19.99,
			Duration:     1320,
			UserID:       professionals[0].ID,
			CategoryID:   categoryID("technology"),
		},
	}
	for _, v := range demoVideos {
		if err := store.Videos.Create(v); err != nil {
			return err
		}
	}

	purchases := []*entity.Purchase{
		{UserID: student.ID, VideoID: demoVideos[0].ID, Amount: demoVideos[0].Price, PaymentMethod: "credit_card"},
		{UserID: student.ID, VideoID: demoVideos[2].ID, Amount: demoVideos[2].Price, PaymentMethod: "credit_card"},
	}
	for _, p := range purchases {
		if err := store.Purchases.Create(p); err != nil {
			return err
		}
	}

	ratings := []*entity.Rating{
		{
			UserID:  student.ID,
			VideoID: demoVideos[0].ID,
			Rating:  5,
			Comment: strptr("Excelente vídeo! Ajudou muito a entender como é o dia a dia na área de desenvolvimento."),
		},
		{
			UserID:  student.ID,
			VideoID: demoVideos[2].ID,
			Rating:  4,
			Comment: strptr("Muito informativo sobre a rotina médica. Gostaria de ter visto mais sobre a interação com pacientes."),
		},
	}
	for _, r := range ratings {
		if err := store.Ratings.Create(r); err != nil {
			return err
		}
	}

	logger.WithFields(logrus.Fields{
		"users":     len(professionals) + 1,
		"videos":    len(demoVideos),
		"purchases": len(purchases),
		"ratings":   len(ratings),
	}).Info("seeded demo data")
	return nil
}
