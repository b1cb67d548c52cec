// Package scaffold writes the swapgen.yaml and answers file templates.
package scaffold

// ConfigTemplate is the swapgen.yaml written by `swapgen init`.
// Every key matches the defaults in internal/config.
const ConfigTemplate = `# swapgen configuration
# Set prompt to false to skip the questions and reuse the cached data.
prompt: true
# Suppress the informational notices printed while prompting.
silent: false
# Output format of the collected metadata: json or yaml.
format: json
# One of debug, info, warn, error.
log_level: info
`

// AnswersTemplate is a sample answers file for `swapgen prompt --answers`.
// Keys left out take the question default.
const AnswersTemplate = `alias: example
githosts:
  - github.com
author:
  username: alice
  name: Alice Doe
owner: alice
version: 0.1.0
additionnalFiles: ""
suggestedKeywords:
  - SWAP
additionnalKeywords: ""
`
