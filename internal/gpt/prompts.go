package gpt

// PromptClassify maps a cook's free-form command onto one of the guide's
// intents. The reply must be a single JSON object.
const PromptClassify = `You classify commands for a hands-free cooking guide. The cook is at the stove, reading one recipe step at a time.

Classify the input into exactly ONE intent and reply with a JSON object and nothing else:
{ "intent": "<name>", "payload": "<text>" }

Intents:
- "next"          move to the next step ("I'm done with this", "what now")
- "previous"      go back a step ("wait, what was before this")
- "toggle_timer"  start, pause or resume the step timer ("hold it", "ok go")
- "add_minute"    put one more minute on the timer ("it needs a bit longer")
- "switch_heat"   change the flame; payload is "low", "medium" or "high" ("turn it up all the way" = high)
- "repeat"        read the current step again ("sorry, what?")
- "status"        how far along or how much time is left
- "help"          what commands exist
- "quit"          stop cooking
- "unknown"       anything else

Rules:
- Reply ONLY with the JSON object. No markdown.
- payload is only needed for switch_heat.
- Prefer "unknown" over a guess.`
