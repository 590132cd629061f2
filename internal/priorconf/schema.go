package priorconf

// priorsSchema validates a priors override file. Every parameter must be a
// probability strictly inside (0, 1); the engine clamps further at use, but
// a file outside these bounds is a configuration mistake worth rejecting.
const priorsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["priors"],
  "additionalProperties": false,
  "properties": {
    "priors": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {
        "type": "object",
        "required": ["p_init", "p_learn", "p_slip", "p_guess"],
        "additionalProperties": false,
        "properties": {
          "p_init":  {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
          "p_learn": {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
          "p_slip":  {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
          "p_guess": {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1}
        }
      }
    }
  }
}`
