// Package seed holds the demo job postings and first-run initialization of
// the three collections.
package seed

import (
	"context"

	"github.com/vijay-pawar-99/CampusHire/internal/codec"
	"github.com/vijay-pawar-99/CampusHire/internal/directory"
	"github.com/vijay-pawar-99/CampusHire/internal/kvstore"
	"github.com/vijay-pawar-99/CampusHire/internal/models"
)

// Jobs returns the six demo postings shipped with the board.
func Jobs() []models.Job {
	return []models.Job{
		{
			ID:         "1",
			Title:      "Frontend Developer Intern",
			Company:    "TechCorp Solutions",
			Location:   "Bangalore, India",
			Type:       models.JobTypeInternship,
			Experience: "0-1 years",
			Salary:     "₹15,000 - ₹25,000/month",
			Description: "We are looking for a passionate Frontend Developer Intern to join our dynamic team. " +
				"You will work on cutting-edge web applications using modern technologies like React, TypeScript, and Tailwind CSS.",
			Requirements: []string{
				"Basic knowledge of HTML, CSS, and JavaScript",
				"Familiarity with React.js",
				"Understanding of responsive design principles",
				"Good problem-solving skills",
				"Excellent communication skills",
			},
			Skills:   []string{"React", "JavaScript", "CSS", "HTML", "Git"},
			PostedBy: "employer1",
			PostedAt: "2024-01-15",
			Deadline: "2024-02-15",
			Status:   models.JobStatusActive,
		},
		{
			ID:         "2",
			Title:      "Software Engineer Trainee",
			Company:    "InnovateTech Pvt Ltd",
			Location:   "Hyderabad, India",
			Type:       models.JobTypeFullTime,
			Experience: "0-2 years",
			Salary:     "₹3.5 - ₹5.5 LPA",
			Description: "Join our Software Engineer Trainee program and kickstart your career in software development. " +
				"You will be working on real-world projects and receive mentorship from senior developers.",
			Requirements: []string{
				"Bachelor's degree in Computer Science or related field",
				"Strong programming fundamentals",
				"Knowledge of at least one programming language (Java, Python, C++)",
				"Understanding of data structures and algorithms",
				"Willingness to learn new technologies",
			},
			Skills:   []string{"Java", "Python", "SQL", "Problem Solving", "Algorithms"},
			PostedBy: "employer2",
			PostedAt: "2024-01-20",
			Deadline: "2024-03-01",
			Status:   models.JobStatusActive,
		},
		{
			ID:         "3",
			Title:      "Data Analyst Intern",
			Company:    "DataDrive Analytics",
			Location:   "Mumbai, India",
			Type:       models.JobTypeInternship,
			Experience: "0-1 years",
			Salary:     "₹12,000 - ₹20,000/month",
			Description: "Exciting opportunity for a Data Analyst Intern to work with large datasets and create meaningful insights. " +
				"You will learn data visualization, statistical analysis, and business intelligence tools.",
			Requirements: []string{
				"Bachelor's degree in Statistics, Mathematics, or related field",
				"Basic knowledge of Excel and SQL",
				"Understanding of statistical concepts",
				"Analytical mindset",
				"Attention to detail",
			},
			Skills:   []string{"Excel", "SQL", "Python", "Statistics", "Data Visualization"},
			PostedBy: "employer3",
			PostedAt: "2024-01-18",
			Deadline: "2024-02-28",
			Status:   models.JobStatusActive,
		},
		{
			ID:         "4",
			Title:      "UI/UX Design Intern",
			Company:    "Creative Studios",
			Location:   "Pune, India",
			Type:       models.JobTypeInternship,
			Experience: "0-1 years",
			Salary:     "₹10,000 - ₹18,000/month",
			Description: "Join our creative team as a UI/UX Design Intern. You will work on user interface design, " +
				"user experience research, and create beautiful, functional designs for web and mobile applications.",
			Requirements: []string{
				"Knowledge of design tools (Figma, Adobe XD, Sketch)",
				"Understanding of design principles",
				"Basic knowledge of user experience concepts",
				"Creative mindset",
				"Portfolio of design work",
			},
			Skills:   []string{"Figma", "Adobe XD", "UI Design", "UX Research", "Prototyping"},
			PostedBy: "employer4",
			PostedAt: "2024-01-22",
			Deadline: "2024-02-25",
			Status:   models.JobStatusActive,
		},
		{
			ID:         "5",
			Title:      "Marketing Associate",
			Company:    "BrandBoost Marketing",
			Location:   "Delhi, India",
			Type:       models.JobTypeFullTime,
			Experience: "0-2 years",
			Salary:     "₹2.5 - ₹4 LPA",
			Description: "We are seeking a dynamic Marketing Associate to join our team. You will be involved in " +
				"digital marketing campaigns, social media management, and market research activities.",
			Requirements: []string{
				"Bachelor's degree in Marketing, Business, or related field",
				"Understanding of digital marketing concepts",
				"Knowledge of social media platforms",
				"Excellent written and verbal communication skills",
				"Creative thinking and problem-solving abilities",
			},
			Skills:   []string{"Digital Marketing", "Social Media", "Content Writing", "Analytics", "SEO"},
			PostedBy: "employer5",
			PostedAt: "2024-01-25",
			Deadline: "2024-03-10",
			Status:   models.JobStatusActive,
		},
		{
			ID:         "6",
			Title:      "Full Stack Developer",
			Company:    "WebWorks Technologies",
			Location:   "Chennai, India",
			Type:       models.JobTypeFullTime,
			Experience: "1-3 years",
			Salary:     "₹4 - ₹7 LPA",
			Description: "Opportunity for a Full Stack Developer to work on exciting web applications. " +
				"You will work with both frontend and backend technologies to create seamless user experiences.",
			Requirements: []string{
				"Proficiency in JavaScript and TypeScript",
				"Experience with React.js and Node.js",
				"Knowledge of databases (MongoDB, PostgreSQL)",
				"Understanding of RESTful APIs",
				"Experience with version control (Git)",
			},
			Skills:   []string{"React", "Node.js", "MongoDB", "TypeScript", "REST APIs"},
			PostedBy: "employer1",
			PostedAt: "2024-01-28",
			Deadline: "2024-03-15",
			Status:   models.JobStatusActive,
		},
	}
}

// Initialize writes the demo jobs and empty users/applications collections,
// but only for keys not already present, so an existing store is never
// overwritten. Safe to call on every startup.
func Initialize(ctx context.Context, kv kvstore.Store) error {
	if err := initKey(ctx, kv, directory.KeyJobs, Jobs()); err != nil {
		return err
	}
	if err := initKey(ctx, kv, directory.KeyUsers, []models.User{}); err != nil {
		return err
	}
	return initKey(ctx, kv, directory.KeyApplications, []models.Application{})
}

func initKey[T any](ctx context.Context, kv kvstore.Store, key string, records []T) error {
	existing, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	data, err := codec.Encode(records)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, data)
}
