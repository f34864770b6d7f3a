// Package defaults holds the compiled-in dataset the public site falls back
// to when the store cannot be reached.
package defaults

import "portfolio/models"

func Profile() models.Profile {
	return models.Profile{
		FirstName: "Christopher",
		LastName:  "Joshy",
		Email:     "christopherjoshy4@gmail.com",
		Phone:     "+918075809531",
		Bio:       "Passionate developer with experience in web development, game programming, and AI. Currently pursuing B.Tech in Computer Science at St. Joseph's College of Engineering and Technology, Palai.",
		Location:  "Alappuzha, Kerala",
		Avatar:    "/public/images/profile.jpg",
		Resume:    "/public/resume/christopher_joshy_resume.pdf",
		Github:    "https://github.com/ChristopherJoshy",
		Linkedin:  "https://www.linkedin.com/in/christopher-joshy-272a77290",
		Instagram: "https://www.instagram.com/calculatederror",
		Titles:    models.StringList{"Web Developer", "AI Integration Specialist", "Prompt Engineer"},
		Stats: models.ProfileStats{
			Visitors:          1589,
			GithubStars:       15,
			GithubCommits:     450,
			GithubRepos:       40,
			ProjectsCompleted: 8,
		},
	}
}

func JourneyItems() []models.JourneyItem {
	return []models.JourneyItem{
		{Title: "Started Coding Journey", Description: "Began learning programming fundamentals with Python and created my first applications.", Date: "2020", Order: 1},
		{Title: "Web Development Foundations", Description: "Learned HTML, CSS, and JavaScript fundamentals. Built responsive websites and interactive web applications.", Date: "2021", Order: 2},
		{Title: "Advanced Programming & Git", Description: "Mastered version control with Git and GitHub. Developed projects using collaborative workflows.", Date: "2022", Order: 3},
		{Title: "Cloud Computing & AWS", Description: "Explored cloud services with AWS: serverless architectures, S3 storage, and EC2 deployments.", Date: "2023", Order: 4},
		{Title: "Game Development & AI", Description: "Expanded into game development using C++ and Unreal Engine. Started exploring machine learning with Python libraries.", Date: "2024", Order: 5},
		{Title: "Full-Stack Development", Description: "Currently focusing on full-stack development with React, Node.js, and database technologies.", Date: "2025", Order: 6},
	}
}

func Skills() []models.Skill {
	return []models.Skill{
		{Name: "JavaScript", Category: "programming", Proficiency: 90, IconName: "fab fa-js", Color: "#F7DF1E"},
		{Name: "Java", Category: "programming", Proficiency: 85, IconName: "fab fa-java", Color: "#007396"},
		{Name: "Python", Category: "programming", Proficiency: 75, IconName: "fab fa-python", Color: "#3776AB"},
		{Name: "React", Category: "framework", Proficiency: 85, IconName: "fab fa-react", Color: "#61DAFB"},
		{Name: "Node.js", Category: "framework", Proficiency: 80, IconName: "fab fa-node-js", Color: "#339933"},
		{Name: "Git", Category: "tool", Proficiency: 85, IconName: "fab fa-git-alt", Color: "#F05032"},
	}
}

func Projects() []models.Project {
	return []models.Project{
		{
			Title:        "KKNotes",
			Description:  "A collaborative note sharing platform for engineering students with semester-wise organization.",
			Category:     "web",
			Technologies: models.StringList{"React", "Firebase", "TypeScript"},
			RepoURL:      "https://github.com/ChristopherJoshy/KKNotes",
			Featured:     true,
			Stars:        10,
			Order:        1,
		},
		{
			Title:        "Pixel Adventure",
			Description:  "A 2D platformer game with procedurally generated levels and retro pixel art styling.",
			Category:     "game",
			Technologies: models.StringList{"C++", "Unreal Engine"},
			Order:        2,
		},
		{
			Title:        "Prompt Workbench",
			Description:  "An AI prompt engineering workbench for iterating on and benchmarking LLM prompts.",
			Category:     "ai",
			Technologies: models.StringList{"Python", "FastAPI"},
			Order:        3,
		},
	}
}

func Certificates() []models.Certificate {
	return []models.Certificate{
		{Title: "AWS Cloud Foundations", Issuer: "Amazon Web Services", Date: "2023", Category: "cloud", Order: 1},
		{Title: "Machine Learning Specialization", Issuer: "Coursera", Date: "2024", Category: "ai", Order: 2},
	}
}
