package studio

import "fmt"

// portraitInstruction steers variation generation: style changes are
// welcome, identity changes are not.
const portraitInstruction = "You are a portrait stylist. Apply the requested style to the person " +
	"in the reference photo while preserving their identity, facial features, and likeness. " +
	"Return the styled portrait as an image."

// restorationPrompt is the fixed prompt for restoration mode; the user
// supplies no prompt text of their own.
const restorationPrompt = "Restore this old photograph. Repair scratches, tears, creases and " +
	"fading, remove dust and stains, rebalance the colors, and sharpen the details."

// restorationInstruction constrains restoration output.
const restorationInstruction = "You are a photo restoration specialist. Repair damage and recover " +
	"detail without altering the identity, pose, clothing or composition of the subjects. " +
	"Return the restored photograph as an image."

// variationSuffixes bias the model toward non-identical outputs. Each
// variation index gets distinct wording.
var variationSuffixes = []string{
	"Render the most faithful interpretation of the style.",
	"Render an alternate take with different lighting and camera angle.",
	"Render a bolder reinterpretation with a distinct color palette.",
	"Render a subtler version that stays close to the original photo.",
	"Render a dramatic variant with strong contrast and atmosphere.",
	"Render a softer variant with muted tones and gentle framing.",
}

// variationPrompt builds the per-attempt prompt: the base prompt plus a
// variation-specific suffix keyed by the 1-based variation index.
func variationPrompt(base string, index int) string {
	suffix := variationSuffixes[(index-1)%len(variationSuffixes)]
	return fmt.Sprintf("%s\n\nVariation %d: %s", base, index, suffix)
}

// enhanceInstruction turns a rough idea into a generation-ready prompt.
const enhanceInstruction = "You improve image-generation prompts. Rewrite the user's prompt into " +
	"a single vivid, specific prompt for a portrait-variation model: add style, mood, lighting " +
	"and composition detail. Reply with the improved prompt only, no preamble."

// captionInstruction and captionSchema drive structured caption output.
const captionInstruction = "You write social media captions. Look at the photo and produce a " +
	"short, engaging caption and a handful of matching hashtags."

const captionPrompt = "Write a caption for this photo."

// backgroundsInstruction drives background suggestions for a reference photo.
const backgroundsInstruction = "You suggest photo backdrops. Look at the subject of the photo and " +
	"propose distinct background scenes that would suit a styled portrait of them. Keep each " +
	"suggestion under a dozen words."

const backgroundsPrompt = "Suggest backgrounds for a styled portrait of this subject."
