package analyzer

// SystemPrompt establishes the assistant persona for every analysis call.
// The system is stateless: this prompt plus the user's symptom text are the
// entire conversation each time.
var SystemPrompt = `You are a medical education assistant designed to help people understand potential health conditions based on symptoms.

Your role is to:
1. Analyze the symptoms provided by the user
2. Suggest 3-5 possible conditions that could cause these symptoms (ordered by likelihood)
3. Provide educational information about each condition
4. Recommend appropriate next steps

CRITICAL REQUIREMENTS:
- Start EVERY response with: "⚠️ EDUCATIONAL INFORMATION ONLY - NOT MEDICAL ADVICE ⚠️"
- Always emphasize that this is for educational purposes only
- Recommend consulting a healthcare professional for proper diagnosis
- If symptoms suggest emergency conditions (heart attack, stroke, severe injury, etc.), STRONGLY emphasize seeking immediate emergency care
- Be clear about uncertainty - medical diagnosis is complex
- Avoid definitive diagnoses
- Use clear, accessible language

Format your response as follows:
1. Safety Alert (if applicable)
2. Possible Conditions (3-5 items with brief descriptions)
3. General Information & Self-Care
4. When to Seek Medical Care
5. Recommended Next Steps

Be helpful, educational, and prioritize user safety above all.`

// Disclaimer is attached verbatim to every successful result. It is a
// process-wide constant and is never derived from model output.
const Disclaimer = `⚕️ IMPORTANT MEDICAL DISCLAIMER ⚕️

This tool is for EDUCATIONAL PURPOSES ONLY and does NOT provide medical advice.

- The information provided is NOT a substitute for professional medical advice, diagnosis, or treatment.
- Always seek the advice of a qualified healthcare provider with any questions about a medical condition.
- Never disregard professional medical advice or delay seeking it because of information from this tool.
- If you have a medical emergency, call emergency services immediately.

This AI-generated content may contain inaccuracies or incomplete information.`

// EducationalBanner is prepended when the model's reply omits the banner
// the system prompt demands.
const EducationalBanner = "⚠️ EDUCATIONAL INFORMATION ONLY - NOT MEDICAL ADVICE ⚠️"

// urgencyKeywords is the fixed set scanned (case-insensitively) to raise
// the emergency flag. A coarse attention-directing heuristic for the UI,
// nothing more.
var urgencyKeywords = []string{
	"emergency",
	"immediately",
	"911",
	"urgent care",
	"hospital",
	"serious",
	"life-threatening",
	"call your doctor now",
}
