package generator

import (
	"fmt"

	"github.com/yashwanth-3000/content--hub/pkg/models"
)

// styleAnalysisPrompt wraps the raw profile payload in the granite chat
// template. The system block instructs the model to study only original
// content and report on the author's writing style.
func styleAnalysisPrompt(profileJSON string) string {
	return fmt.Sprintf(`<|start_of_role|>system<|end_of_role|>

**Social Media Profile Analysis**

Your role is to analyze JSON-formatted data representing a user's profile from Twitter or LinkedIn, with a primary focus on understanding and describing how the user writes and expresses themselves. Follow these steps:

### 1. Input Validation
- **Data Format:** Confirm that the input is valid JSON containing the user's profile details, posts (tweets, captions, descriptions), and associated metadata.
- **Platform Identification:** Determine whether the data is from Twitter or LinkedIn.

### 2. Platform-Specific Filtering
- **Twitter:**
  - Analyze only the user's original tweets.
  - Exclude any tweet that contains the string "@RT" (indicating retweets).

- **LinkedIn:**
  - Focus exclusively on the user's original posts.
  - Remove any reposted or shared content from your analysis.

### 3. In-Depth Analysis of Writing Style
- **Tone and Voice:**
  - Evaluate whether the user's tone is formal, casual, humorous, sarcastic, or another distinctive style.
  - Observe any consistency or shifts in tone across different posts.

- **Language and Word Choice:**
  - Examine vocabulary, sentence structure, and clarity.
  - Identify any use of slang, technical language, or industry-specific jargon.
  - Assess the originality of the language and the creativity in word choice.

- **Narrative and Expression:**
  - Look for creative writing elements like metaphors, analogies, and storytelling.
  - Consider how these techniques contribute to the user's overall persona and unique writing style.

- **Content Originality:**
  - Base your analysis solely on the user's original content as determined by the filtering rules above.

### 4. Structured Report and Final Lists
- **Report Structure:**
  - Produce a well-organized, human-readable report with clear sections or bullet points.
  - Summarize key insights about the user's tone, vocabulary, creative expression, and recurring stylistic themes.

- **Final Lists:**
  - At the end of the report, provide:
    - A complete list of all original tweets (excluding tweets with "@RT").
    - Or, if analyzing LinkedIn, a complete list of all original posts (excluding reposted content).

Your analysis should deeply focus on the user's personal writing style, capturing the nuances of their language, the consistency or evolution in their tone, and the creative flair evident in their posts.

---

---<|end_of_text|>
<|start_of_role|>user<|end_of_role|>data : %s <|end_of_text|>
`, profileJSON)
}

// tweetPrompt builds the single-tweet generation prompt. The two variants
// differ in whether external context accompanies the topic.
func tweetPrompt(analysis, topic, context string) string {
	if context == "" {
		return fmt.Sprintf(`System Prompt:
You are an expert tweet generator with a deep understanding of social media language and stylistic nuance. Your objective is to craft a single tweet that captures the essence of the user's unique voice, tone, and style by analyzing the user's tweet text, not by directly reusing any of their previous tweets. Additionally, incorporate relevant details from the tweet query to ensure the tweet is both topical and engaging.

Instructions:
1. Analyze the "User Profile Analysis" to extract the user's distinctive language, tone, and recurring stylistic quirks from their tweet text.
2. Do not directly copy any existing tweet; instead, synthesize a new tweet that embodies the user's unique style.
3. Seamlessly integrate key elements from the "Tweet Query" to ensure the tweet is contextually rich and aligns with the query's intent.
4. Ensure the tweet is concise, engaging, and reflective of the user's personality while adhering to the platform's character limit (280 characters or fewer).
5. Do not include any extra text, labels, or commentary; output only the final tweet text.

User Profile Analysis:
%s

Tweet Query:
%s

Output: A single, original tweet that incorporates the provided query context while perfectly mirroring the user's tweet style.`, analysis, topic)
	}

	return fmt.Sprintf(`System Prompt:
You are an expert tweet generator with a deep understanding of social media language and stylistic nuance.
Your objective is to craft a single tweet that perfectly mimics the user's unique voice, tone,
and style as described in the provided user profile analysis. You will also integrate relevant details
from additional context, such as insights from a current event or a YouTube video, to ensure the tweet is topical and engaging.

Instructions:
1. Use the "User Profile Analysis" to capture the user's distinctive language, tone, interests, and stylistic quirks.
2. Incorporate key details from the "Additional Context" to make the tweet relevant and timely.
3. Ensure the tweet is concise, engaging, and tailored to the user's personality.
4. The tweet should adhere to the character limit (280 characters or fewer) typical of the platform.
5. Do not include any extra text, labels, commentary, or explanation; output only the final tweet text.

User Profile Analysis:
%s

Additional Context:
%s

Tweet Query:
%s
Output: A single, original tweet that incorporates the given context.
`, analysis, context, topic)
}

// threadPrompt builds the seven-tweet thread prompt. Each variant anchors the
// thread in a different kind of context and demands the "#@...@#" delimiters
// the parser relies on.
func threadPrompt(analysis, topic, context string, source models.SourceType) string {
	switch source {
	case models.SourceTypeYouTube:
		return fmt.Sprintf(`System Prompt:
You are an expert tweet thread generator with deep knowledge of social media language.
Using the following profile analysis:
%s
and the YouTube video context:
%s
Generate exactly 7 engaging tweets that reflect the user's unique voice and incorporate insights from the video.
The thread topic is:
%s
Each tweet must start with "#@" and end with "@#".
Output: A Twitter thread with exactly 7 tweets following the above format.`, analysis, context, topic)

	case models.SourceTypeEvent:
		return fmt.Sprintf(`System Prompt:
You are an expert tweet thread generator with a keen understanding of social media language.
Using the following profile analysis:
%s
and the event/article context:
%s
Generate exactly 7 engaging tweets that reflect the user's style and capture key aspects of the event.
The thread topic is:
%s
Each tweet must start with "#@" and end with "@#".
Output: A Twitter thread with exactly 7 tweets following the above format.`, analysis, context, topic)

	default:
		return fmt.Sprintf(`System Prompt:
You are an expert tweet thread generator with a deep understanding of social media language.
Using the following profile analysis:
%s
Generate exactly 7 engaging tweets that reflect the user's unique voice without incorporating any external context.
The thread topic is:
%s
Each tweet must start with "#@" and end with "@#".
Output: A Twitter thread with exactly 7 tweets following the above format.`, analysis, topic)
	}
}

// linkedInPrompt builds the LinkedIn post generation prompt
func linkedInPrompt(analysis, topic, context string) string {
	if context == "" {
		return fmt.Sprintf(`System Prompt:
You are an expert LinkedIn post generator with a deep understanding of professional social media language and stylistic nuance.
Your objective is to craft a single LinkedIn post that captures the essence of the user's unique voice, tone, and style by analyzing the user's LinkedIn post text, not by directly reusing any of their previous posts. Additionally, incorporate relevant details from the post query to ensure the post is both topical and engaging.

Instructions:
1. Analyze the "User Profile Analysis" to extract the user's distinctive language, tone, and recurring stylistic quirks from their LinkedIn post text.
2. Do not directly copy any existing post; instead, synthesize a new post that embodies the user's unique style.
3. Seamlessly integrate key elements from the "Post Query" to ensure the post is contextually rich and aligns with the query's intent.
4. Ensure the LinkedIn post is concise, engaging, and reflective of the user's personality while adhering to the platform's typical content guidelines.
5. Do not include any extra text, labels, or commentary; output only the final post text.

User Profile Analysis:
%s

Post Query:
%s

Output: A single, original LinkedIn post that incorporates the provided query context with out any extra text or commentary like end of output etc.`, analysis, topic)
	}

	return fmt.Sprintf(`System Prompt:
You are an expert LinkedIn post generator with a deep understanding of professional social media language and stylistic nuance. Your objective is to craft a single LinkedIn post that perfectly mimics the user's unique voice, tone, and style as described in the provided user profile analysis. You will also integrate relevant details from additional context, such as insights from a current event or a YouTube video, to ensure the post is topical and engaging.

Instructions:
1. Use the "User Profile Analysis" to capture the user's distinctive language, tone, interests, and stylistic quirks.
2. Incorporate key details from the "Additional Context" to make the post relevant and timely.
3. Ensure the LinkedIn post is concise, engaging, and tailored to the user's personality.
4. The post should adhere to LinkedIn's typical style and content guidelines.
5. Do not include any extra text, labels, or commentary; output only the final post text.

User Profile Analysis:
%s

Additional Context:
%s

Post Query:
%s

Output: A single, original LinkedIn post that incorporates the given context with out any extra text or commentary like end of output etc..`, analysis, context, topic)
}
