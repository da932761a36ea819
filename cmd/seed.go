package main

import (
	"context"
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/repository"
	"portfolio/internal/service"
)

const (
	demoUsername = "naiara123"
	demoEmail    = "naiaraxf@gmail.com"
	demoPassword = "portfolio123"
)

// seedDemoData inserts a demo user with a filled portfolio. It is a no-op
// when the demo user already exists.
func seedDemoData(ctx context.Context, repos *repository.Repository, services *service.Service) error {
	if existing, err := repos.Users.GetByUsername(ctx, demoUsername); err != nil {
		return err
	} else if existing != nil {
		return nil
	}

	user, err := services.Authorization.SignUp(ctx, "Naiara Martins", demoEmail, demoPassword)
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	username := demoUsername
	bio := "Desenvolvedora Full Stack apaixonada por criar portfólios digitais."
	avatar := "https://i.imgur.com/ExemploAvatar.png"
	if _, err := repos.Users.Update(ctx, user.ID, models.UserUpdate{
		Username:  &username,
		Bio:       &bio,
		AvatarURL: &avatar,
	}); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}

	skills := []service.SkillInput{
		{Name: "React", IconURL: "https://i.imgur.com/ReactIcon.png"},
		{Name: "TypeScript", IconURL: "https://i.imgur.com/TypeScriptIcon.png"},
		{Name: "Next.js", IconURL: "https://i.imgur.com/NextjsIcon.png"},
	}
	for _, s := range skills {
		if _, err := services.Skills.Create(ctx, user.ID, s); err != nil {
			return fmt.Errorf("seed skill %q: %w", s.Name, err)
		}
	}

	projects := []service.ProjectInput{
		{
			Title:       "Portfólio Pessoal",
			Description: "Meu portfólio online mostrando projetos e habilidades.",
			Link:        "https://meuportfolio.com",
			ImageURL:    "https://i.imgur.com/Projeto1.png",
		},
		{
			Title:       "Plataforma de Freelancers",
			Description: "Sistema para conectar freelancers e clientes.",
			Link:        "https://freelancerplatform.com",
			ImageURL:    "https://i.imgur.com/Projeto2.png",
		},
	}
	for _, p := range projects {
		if _, err := services.Projects.Create(ctx, user.ID, p); err != nil {
			return fmt.Errorf("seed project %q: %w", p.Title, err)
		}
	}

	contacts := []service.ContactInput{
		{Type: "GitHub", Value: "https://github.com/naiarax"},
		{Type: "LinkedIn", Value: "https://www.linkedin.com/in/naiarafxmartins/"},
	}
	for _, c := range contacts {
		if _, err := services.Contacts.Create(ctx, user.ID, c); err != nil {
			return fmt.Errorf("seed contact %q: %w", c.Type, err)
		}
	}

	return nil
}
