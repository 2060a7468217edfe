package client

import (
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
)

const pagingProperties = `
		"count": {"type": "integer", "minimum": 1, "maximum": 250},
		"start_pos": {"type": "integer", "minimum": 0}`

const dateProperty = `{"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"}`

var (
	playerSearchSchema = ifpa.MustCompileParamSchema("player_search", `{
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1, "maxLength": 100},
		"country": {"type": "string", "minLength": 1},
		"stateprov": {"type": "string", "minLength": 1},
		"tournament": {"type": "string", "minLength": 1},
		"tourpos": {"type": "integer", "minimum": 1},`+pagingProperties+`
	},
	"dependentRequired": {"tourpos": ["tournament"]},
	"additionalProperties": false
}`)

	tournamentSearchSchema = ifpa.MustCompileParamSchema("tournament_search", `{
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"city": {"type": "string", "minLength": 1},
		"stateprov": {"type": "string", "minLength": 1},
		"country": {"type": "string", "minLength": 1},
		"start_date": `+dateProperty+`,
		"end_date": `+dateProperty+`,`+pagingProperties+`
	},
	"dependentRequired": {"start_date": ["end_date"], "end_date": ["start_date"]},
	"additionalProperties": false
}`)

	rankingsSchema = ifpa.MustCompileParamSchema("rankings", `{
	"type": "object",
	"properties": {
		"country": {"type": "string", "minLength": 1},`+pagingProperties+`
	},
	"additionalProperties": false
}`)

	directorSearchSchema = ifpa.MustCompileParamSchema("director_search", `{
	"type": "object",
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"country": {"type": "string", "minLength": 1},`+pagingProperties+`
	},
	"additionalProperties": false
}`)

	playerResultsSchema = ifpa.MustCompileParamSchema("player_results", `{
	"type": "object",
	"properties": {
		"start_date": `+dateProperty+`,
		"end_date": `+dateProperty+`
	},
	"additionalProperties": false
}`)
)
