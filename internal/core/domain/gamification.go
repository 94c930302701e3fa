package domain

const (
	pointsPerCompleted  = 50
	pointsPerInProgress = 10
	pointsPerLevel      = 100
)

// Achievement is a derived view, recomputed on every dashboard read and
// never persisted.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Progress    int    `json:"progress"`
	Target      int    `json:"target"`
	Completed   bool   `json:"completed"`
}

// GamificationSummary aggregates task counts, points, level and
// achievement progress for a single user.
type GamificationSummary struct {
	TotalTasks          int           `json:"total_tasks"`
	CompletedTasks      int           `json:"completed_tasks"`
	InProgressTasks     int           `json:"in_progress_tasks"`
	PendingTasks        int           `json:"pending_tasks"`
	Points              int           `json:"points"`
	Level               int           `json:"level"`
	ProgressToNextLevel int           `json:"progress_to_next_level"`
	Achievements        []Achievement `json:"achievements"`
}

// achievementMetric selects which counter an achievement rule measures.
type achievementMetric int

const (
	metricCompleted achievementMetric = iota
	metricPoints
	metricLevel
)

type achievementRule struct {
	id          string
	title       string
	description string
	icon        string
	metric      achievementMetric
	target      int
}

// achievementCatalog is static configuration: adding an achievement is a
// data change, not a code change.
var achievementCatalog = []achievementRule{
	{"first-steps", "First Steps", "Complete your first task", "👣", metricCompleted, 1},
	{"point-collector", "Point Collector", "Earn 500 points", "⭐", metricPoints, 500},
	{"task-master", "Task Master", "Complete 10 tasks", "🏆", metricCompleted, 10},
	{"rising-star", "Rising Star", "Reach level 5", "🚀", metricLevel, 5},
	{"elite-performer", "Elite Performer", "Reach level 10", "👑", metricLevel, 10},
	{"champion", "Champion", "Complete 50 tasks", "💪", metricCompleted, 50},
}

// DeriveGamification maps a task list to points, level and achievement
// progress. It is pure and deterministic: the same list always yields the
// same summary, and an empty list yields level 1 with zero points.
func DeriveGamification(tasks []Task) GamificationSummary {
	s := GamificationSummary{TotalTasks: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusCompleted:
			s.CompletedTasks++
		case StatusInProgress:
			s.InProgressTasks++
		case StatusPending:
			s.PendingTasks++
		}
	}

	s.Points = s.CompletedTasks*pointsPerCompleted + s.InProgressTasks*pointsPerInProgress
	s.Level = s.Points/pointsPerLevel + 1
	s.ProgressToNextLevel = s.Points % pointsPerLevel

	s.Achievements = make([]Achievement, 0, len(achievementCatalog))
	for _, rule := range achievementCatalog {
		var progress int
		switch rule.metric {
		case metricCompleted:
			progress = s.CompletedTasks
		case metricPoints:
			progress = s.Points
		case metricLevel:
			progress = s.Level
		}
		s.Achievements = append(s.Achievements, Achievement{
			ID:          rule.id,
			Title:       rule.title,
			Description: rule.description,
			Icon:        rule.icon,
			Progress:    progress,
			Target:      rule.target,
			Completed:   progress >= rule.target,
		})
	}
	return s
}
