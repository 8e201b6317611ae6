package services

import (
	"time"

	"astra/internal/db"
	"astra/internal/models"
)

// Aggregate reporting. Everything here is read-only and recomputed per
// call; there is no materialized cache to invalidate.

type HubStat struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	MemberCount int64  `json:"member_count"`
	PostCount   int64  `json:"post_count"`
}

type PostTypeCount struct {
	PostType string `json:"post_type"`
	Count    int64  `json:"count"`
}

type GrowthPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int64  `json:"count"`
}

type MentorshipBreakdown struct {
	Pending   int64 `json:"pending"`
	Accepted  int64 `json:"accepted"`
	Declined  int64 `json:"declined"`
	Completed int64 `json:"completed"`
}

type PlatformStats struct {
	TotalUsers              int64           `json:"total_users"`
	TotalPosts              int64           `json:"total_posts"`
	TotalComments           int64           `json:"total_comments"`
	TotalHubs               int64           `json:"total_hubs"`
	TotalMentors            int64           `json:"total_mentors"`
	TotalMentorshipRequests int64           `json:"total_mentorship_requests"`
	PendingRequests         int64           `json:"pending_requests"`
	AcceptedRequests        int64           `json:"accepted_requests"`
	HubBreakdown            []HubStat       `json:"hub_breakdown"`
	PostTypes               []PostTypeCount `json:"post_types"`
}

// HubStats returns every hub with its member and post counts, newest hub first.
func HubStats(orderBy string) ([]HubStat, error) {
	if orderBy == "" {
		orderBy = "hubs.created_at DESC"
	}
	var stats []HubStat
	err := db.DB.Model(&models.Hub{}).
		Select(`hubs.id, hubs.name, hubs.slug, hubs.icon, hubs.description,
			(SELECT COUNT(*) FROM hub_members m WHERE m.hub_id = hubs.id) AS member_count,
			(SELECT COUNT(*) FROM posts p WHERE p.hub_id = hubs.id) AS post_count`).
		Order(orderBy).
		Scan(&stats).Error
	return stats, err
}

// PostTypeDistribution counts posts grouped by type, most common first.
func PostTypeDistribution() ([]PostTypeCount, error) {
	var counts []PostTypeCount
	err := db.DB.Model(&models.Post{}).
		Select("post_type, COUNT(*) AS count").
		Group("post_type").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}

// GetPlatformStats computes the platform-wide snapshot.
func GetPlatformStats() (*PlatformStats, error) {
	var stats PlatformStats

	db.DB.Model(&models.Account{}).Count(&stats.TotalUsers)
	db.DB.Model(&models.Post{}).Count(&stats.TotalPosts)
	db.DB.Model(&models.Comment{}).Count(&stats.TotalComments)
	db.DB.Model(&models.Hub{}).Count(&stats.TotalHubs)
	db.DB.Model(&models.Profile{}).Where("is_mentor = ?", true).Count(&stats.TotalMentors)
	db.DB.Model(&models.MentorshipRequest{}).Count(&stats.TotalMentorshipRequests)
	db.DB.Model(&models.MentorshipRequest{}).Where("status = ?", models.RequestStatusPending).Count(&stats.PendingRequests)
	db.DB.Model(&models.MentorshipRequest{}).Where("status = ?", models.RequestStatusAccepted).Count(&stats.AcceptedRequests)

	hubs, err := HubStats("")
	if err != nil {
		return nil, err
	}
	stats.HubBreakdown = hubs

	types, err := PostTypeDistribution()
	if err != nil {
		return nil, err
	}
	stats.PostTypes = types

	return &stats, nil
}

// GrowthStats buckets new accounts and new posts by calendar date for
// the trailing 30 days, ascending. Dates without events are omitted
// rather than zero-filled.
func GrowthStats() (users, posts []GrowthPoint, err error) {
	since := time.Now().AddDate(0, 0, -30)

	users, err = growthSeries(&models.Account{}, since)
	if err != nil {
		return nil, nil, err
	}
	posts, err = growthSeries(&models.Post{}, since)
	if err != nil {
		return nil, nil, err
	}
	return users, posts, nil
}

func growthSeries(model interface{}, since time.Time) ([]GrowthPoint, error) {
	type row struct {
		Date  time.Time
		Count int64
	}
	var rows []row
	err := db.DB.Model(model).
		Select("DATE(created_at) AS date, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	points := make([]GrowthPoint, len(rows))
	for i, r := range rows {
		points[i] = GrowthPoint{Date: r.Date.Format("2006-01-02"), Count: r.Count}
	}
	return points, nil
}

// SkillsDistribution returns the top 10 skills by holder count,
// descending. Skills nobody holds are excluded by the inner join; ties
// break arbitrarily.
func SkillsDistribution() ([]SkillCount, error) {
	var counts []SkillCount
	err := db.DB.Table("skills").
		Select("skills.name AS skill, COUNT(profile_skills.profile_id) AS count").
		Joins("JOIN profile_skills ON profile_skills.skill_id = skills.id").
		Group("skills.id, skills.name").
		Order("count DESC").
		Limit(10).
		Scan(&counts).Error
	return counts, err
}

// GetMentorshipBreakdown counts requests by lifecycle status.
func GetMentorshipBreakdown() (MentorshipBreakdown, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	var breakdown MentorshipBreakdown
	err := db.DB.Model(&models.MentorshipRequest{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return breakdown, err
	}
	for _, r := range rows {
		switch r.Status {
		case models.RequestStatusPending:
			breakdown.Pending = r.Count
		case models.RequestStatusAccepted:
			breakdown.Accepted = r.Count
		case models.RequestStatusDeclined:
			breakdown.Declined = r.Count
		case models.RequestStatusCompleted:
			breakdown.Completed = r.Count
		}
	}
	return breakdown, nil
}
