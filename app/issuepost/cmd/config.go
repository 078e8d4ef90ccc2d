package cmd

import (
	"time"

	"github.com/croneill/issuepost/internal/config"
)

var cfg = config.Config{}

// Flag destinations
var (
	configFile       string
	telemetryEnabled bool

	// Create options
	qualifiedRepoName string
	issueTitle        string
	issueBody         string
	issueLabels       []string
	issueAssignees    []string
	requestTimeout    time.Duration
)
