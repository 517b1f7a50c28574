package summarizer

const systemPrompt = "You are an expert at summarizing transcripts into structured notes. " +
	"Extract key information faithfully and never invent content that is not in the transcript."

const summaryPrompt = `Analyze the transcript below and produce a markdown summary with exactly these three sections, in this order:

## Key Points
<bullet points of the most important information>

## Main Topics
<bullet points of the topics discussed>

## Action Items
<bullet points using the format: [Owner] - Task - [Due: Date]>

Rules:
1. Start every item with "- ".
2. Keep the exact section titles above and add no other sections.
3. Only include information present in the transcript.
4. If an owner or date is not specified, write "Not specified".

Transcript:
---
%s
---`

const combinePrompt = `Below are summaries of consecutive sections of the same recording. Combine them into a single summary with the same three sections (Key Points, Main Topics, Action Items), removing duplicates and preserving all unique information. Keep the exact section titles and bullet formatting.

Sections to combine:

%s`
