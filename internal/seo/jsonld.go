package seo

import (
	"time"

	"github.com/linque-cms/internal/content"
)

// OrganizationLD builds the schema.org Organization payload for the site.
func OrganizationLD(name, url, logoURL string) map[string]any {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
		"url":      url,
	}
	if logoURL != "" {
		data["logo"] = logoURL
	}
	return data
}

// BlogPostingLD builds the schema.org BlogPosting payload for a post page.
func BlogPostingLD(post content.Post, pageURL, publisherName string) map[string]any {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "BlogPosting",
		"headline":    post.Title,
		"description": post.Description,
		"url":         pageURL,
		"publisher": map[string]any{
			"@type": "Organization",
			"name":  publisherName,
		},
	}
	if post.HeroImage != "" {
		data["image"] = post.HeroImage
	}
	if post.PublishedAt != nil {
		data["datePublished"] = post.PublishedAt.UTC().Format(time.RFC3339)
	}
	if len(post.Tags) > 0 {
		data["keywords"] = post.Tags
	}
	return data
}

// JobPostingLD builds the schema.org JobPosting payload for a job page.
func JobPostingLD(job content.Job, hiringOrg, orgURL string) map[string]any {
	data := map[string]any{
		"@context":       "https://schema.org",
		"@type":          "JobPosting",
		"title":          job.Title,
		"description":    job.Description,
		"employmentType": job.EmploymentType,
		"hiringOrganization": map[string]any{
			"@type":  "Organization",
			"name":   hiringOrg,
			"sameAs": orgURL,
		},
	}
	if job.Location != "" {
		data["jobLocation"] = map[string]any{
			"@type": "Place",
			"address": map[string]any{
				"@type":           "PostalAddress",
				"addressLocality": job.Location,
			},
		}
	}
	if job.RemoteType == "Remote" {
		data["jobLocationType"] = "TELECOMMUTE"
	}
	if job.PostedAt != nil {
		data["datePosted"] = job.PostedAt.UTC().Format(time.RFC3339)
	}
	if job.SalaryRange != "" {
		data["baseSalary"] = job.SalaryRange
	}
	return data
}
