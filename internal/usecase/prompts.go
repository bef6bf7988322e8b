package usecase

// Prompt templates for the content-generation flows. Each instructs the model
// to answer with the JSON shape the flow decodes; the generator is already in
// JSON response mode, the schema reminder in the prompt keeps field names
// stable.

const productDetailsPrompt = `You are an expert in e-commerce marketing for handcrafted goods. Your task is to generate compelling product details based on images and keywords provided by an artisan.

Analyze the attached images and the following keywords to create a product title, description, and SEO tags.

Keywords: %s

Instructions:
1. **Product Title:** Create a catchy, artisan-style title for the product.
2. **Product Description:** Write a 2-paragraph description in a warm, artisan style. The first paragraph should describe the product's appearance and materials. The second paragraph should tell a brief story about its creation or inspiration, connecting with the artisan spirit.
3. **SEO Tags:** Suggest 8-10 SEO-friendly tags that are relevant to the product.

Respond with JSON: {"title": string, "description": string, "seoTags": [string]}`

const artisanBioPrompt = `You are a skilled copywriter for a handcraft marketplace. Write a warm, first-person artisan bio.

Artisan name: %s
Craft type: %s
Region: %s
Style: %s
Background: %s

Instructions:
1. Write 2-3 paragraphs in a warm, personal voice.
2. Weave the craft, region, and style naturally into the story.
3. Close with what makes the artisan's work special.

Respond with JSON: {"bio": string}`

const productNarrativePrompt = `You are a storyteller for a handcraft marketplace. Write an evocative narrative that connects a product to its maker.

Product name: %s
Product description: %s
Artisan background: %s

Instructions:
1. Write a single narrative of 2-3 paragraphs.
2. Ground the story in the product's materials and the artisan's history.
3. Keep the tone warm and authentic, not salesy.

Respond with JSON: {"narrative": string}`

const growthInsightsPrompt = `You are an expert e-commerce analyst and business coach for artisans. Your task is to analyze the provided sales and traffic data for an artisan and generate insightful, personalized advice.

Here is the data for the last 30 days:
Sales Data: %s
Traffic Data: %s

Instructions:
1. **Analyze the Data:** Look for trends, correlations, peaks, and troughs in both sales and traffic. Is there a day of the week when sales are highest? Does a spike in traffic correlate with a spike in sales?
2. **Generate 3 Personalized Insights:** Based on your analysis, create three distinct, bullet-point insights. These should be observations about their business performance, framed in an encouraging and easy-to-understand way.
3. **Suggest 2 Actionable Next Steps:** Provide two concrete, actionable steps the artisan can take to build on their successes or address areas for improvement.

Respond with JSON: {"insights": [string], "nextSteps": [string]}`

const instagramPostPrompt = `You are a social media manager for a handcraft marketplace. Write an engaging Instagram post for an artisan's product.

Product name: %s
Product description: %s
Tags: %s

Instructions:
1. Write a short, engaging caption in the artisan's voice.
2. Include a call to action and 5-8 relevant hashtags.

Respond with JSON: {"post": string}`
