package repository

import "aifolio/internal/model"

// SeedCaseStudies returns the fixed demo case studies inserted at store
// initialization, in insertion order. The content is deterministic so test
// fixtures can rely on it byte-for-byte.
func SeedCaseStudies() []model.InsertCaseStudy {
	return []model.InsertCaseStudy{
		{
			Title:   "AI-Powered Smart Shopping Assistant",
			Slug:    "ai-powered-smart-shopping-assistant",
			Summary: "Developed an AI shopping assistant that provides personalized product recommendations and shopping insights.",
			Content: `# Project Overview
We created an intelligent shopping assistant that leverages machine learning to analyze user preferences and provide tailored product recommendations. The application optimizes the shopping experience by understanding user habits and preferences over time.

## Challenges
- Building a recommendation system that works with limited initial user data
- Creating a responsive and intuitive interface for mobile users
- Ensuring data privacy while collecting sufficient information for personalization

## Solution
Our team implemented a hybrid recommendation system combining collaborative filtering and content-based approaches. We designed a mobile-first interface that presents recommendations in an intuitive card-based layout. User data is processed locally when possible, with robust encryption for any data transmitted to our servers.

## Results
The assistant increased conversion rates by 28% and improved customer satisfaction scores by 35%. The average time spent shopping decreased while the average order value increased by 15%.
`,
			ImageURL:     "/case-studies/ai-shopping-assistant.svg",
			Status:       model.StatusPublished,
			Category:     "E-commerce",
			ClientName:   "GlobalShop Inc.",
			Technologies: []string{"React Native", "TensorFlow", "Node.js", "GraphQL"},
		},
		{
			Title:   "Generative Design System for Architecture",
			Slug:    "generative-design-system-architecture",
			Summary: "Created a generative AI system that helps architects explore design possibilities based on constraints and requirements.",
			Content: `# Project Overview
Our team developed a generative design system that assists architects in exploring innovative design solutions while meeting specific requirements and constraints. The system uses AI to generate multiple viable design options based on parameters such as space requirements, building codes, and aesthetic preferences.

## Challenges
- Translating architectural constraints into machine-readable parameters
- Generating designs that are both creative and practical
- Creating an interface that architects find intuitive and valuable

## Solution
We built a parameter-based design generation system using deep learning models trained on thousands of architectural designs. The interface allows architects to specify constraints through both visual inputs and numerical parameters. The system provides real-time feedback on the feasibility of generated designs.

## Results
The system reduced initial design exploration time by 60% while increasing the number of viable concepts considered by architects. Client feedback indicates that the tool has helped discover unexpected design solutions that would likely have been overlooked using traditional methods.
`,
			ImageURL:     "/case-studies/architecture-ai.svg",
			Status:       model.StatusPublished,
			Category:     "Architecture",
			ClientName:   "UrbanSpace Architects",
			Technologies: []string{"Python", "TensorFlow", "Three.js", "WebGL"},
		},
		{
			Title:   "Predictive Maintenance AI for Manufacturing",
			Slug:    "predictive-maintenance-ai-manufacturing",
			Summary: "Implemented an AI system that predicts equipment failures before they occur, reducing downtime and maintenance costs.",
			Content: `# Project Overview
We developed a predictive maintenance system that uses machine learning to analyze sensor data from manufacturing equipment and predict potential failures before they occur. This allows maintenance teams to address issues proactively rather than reactively.

## Challenges
- Integrating with diverse legacy equipment sensors
- Building models that could predict failures with minimal false positives
- Creating actionable alerts with clear maintenance recommendations

## Solution
Our system collects data from various sensors through custom IoT bridges for legacy equipment. We implemented a multi-model approach that combines anomaly detection with specific failure prediction models. The system provides maintenance teams with detailed recommendations and estimated time-to-failure metrics.

## Results
After implementation, the client experienced a 45% reduction in unplanned downtime and a 30% reduction in maintenance costs. The system achieved a failure prediction accuracy of 92% with a false positive rate below 5%.
`,
			ImageURL:     "/case-studies/predictive-maintenance.svg",
			Status:       model.StatusPublished,
			Category:     "Manufacturing",
			ClientName:   "TechManufacturing Ltd.",
			Technologies: []string{"Python", "TensorFlow", "IoT", "Time Series Analysis"},
		},
	}
}
