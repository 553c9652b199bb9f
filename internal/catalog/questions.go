package catalog

import "github.com/abhisek/pathwise/internal/question"

var seedQuestions = map[string][]question.Question{
	"software-engineer": {
		{ID: "se-1", Text: "How comfortable are you with JavaScript programming?", Kind: question.KindScale, Skill: "JavaScript"},
		{
			ID:      "se-2",
			Text:    "Which best describes your experience with React?",
			Kind:    question.KindMultipleChoice,
			Options: []string{"Never used it", "Basic understanding", "Built several projects", "Expert level"},
			Skill:   "React",
		},
		{ID: "se-3", Text: "How would you rate your problem-solving abilities in coding challenges?", Kind: question.KindScale, Skill: "Problem Solving"},
		{
			ID:      "se-4",
			Text:    "What is your experience with version control systems like Git?",
			Kind:    question.KindMultipleChoice,
			Options: []string{"No experience", "Basic commands", "Comfortable with branching", "Advanced workflows"},
			Skill:   "Version Control",
		},
		{ID: "se-5", Text: "How confident are you in database design and management?", Kind: question.KindScale, Skill: "Database Management"},
	},
	"data-scientist": {
		{ID: "ds-1", Text: "What is your proficiency level in Python for data analysis?", Kind: question.KindScale, Skill: "Python"},
		{
			ID:      "ds-2",
			Text:    "How familiar are you with machine learning algorithms?",
			Kind:    question.KindMultipleChoice,
			Options: []string{"Not familiar", "Know basic concepts", "Implemented several models", "Expert in ML"},
			Skill:   "Machine Learning",
		},
		{ID: "ds-3", Text: "Rate your statistical analysis knowledge", Kind: question.KindScale, Skill: "Statistics"},
		{ID: "ds-4", Text: "How comfortable are you with SQL for data querying?", Kind: question.KindScale, Skill: "SQL"},
		{
			ID:      "ds-5",
			Text:    "What is your experience with data visualization tools?",
			Kind:    question.KindMultipleChoice,
			Options: []string{"Never used any", "Basic charts", "Advanced visualizations", "Expert in multiple tools"},
			Skill:   "Data Visualization",
		},
	},
	"product-manager": {
		{ID: "pm-1", Text: "How experienced are you in strategic planning and roadmapping?", Kind: question.KindScale, Skill: "Strategic Planning"},
		{
			ID:      "pm-2",
			Text:    "What is your experience with user experience research?",
			Kind:    question.KindMultipleChoice,
			Options: []string{"No experience", "Basic understanding", "Conducted user studies", "Expert researcher"},
			Skill:   "User Experience",
		},
		{ID: "pm-3", Text: "Rate your leadership and team management skills", Kind: question.KindScale, Skill: "Leadership"},
		{
			ID:      "pm-4",
			Text:    "How familiar are you with Agile methodologies?",
			Kind:    question.KindMultipleChoice,
			Options: []string{"Not familiar", "Basic knowledge", "Experienced practitioner", "Certified expert"},
			Skill:   "Agile Methodology",
		},
		{ID: "pm-5", Text: "Rate your analytical and data interpretation skills", Kind: question.KindScale, Skill: "Analytics"},
	},
	"ux-designer": {
		{ID: "ux-1", Text: "How proficient are you in user research methodologies?", Kind: question.KindScale, Skill: "User Research"},
		{
			ID:      "ux-2",
			Text:    "What is your experience with design tools like Figma or Sketch?",
			Kind:    question.KindMultipleChoice,
			Options: []string{"Never used", "Basic skills", "Proficient user", "Advanced expert"},
			Skill:   "Design Tools",
		},
		{ID: "ux-3", Text: "Rate your wireframing and prototyping abilities", Kind: question.KindScale, Skill: "Prototyping"},
		{ID: "ux-4", Text: "How comfortable are you with usability testing?", Kind: question.KindScale, Skill: "Usability Testing"},
		{
			ID:      "ux-5",
			Text:    "What is your experience with information architecture?",
			Kind:    question.KindMultipleChoice,
			Options: []string{"Not familiar", "Basic understanding", "Created site maps", "Expert in IA"},
			Skill:   "Information Architecture",
		},
	},
	"digital-marketer": {
		{ID: "dm-1", Text: "How experienced are you with SEO and SEM strategies?", Kind: question.KindScale, Skill: "SEO/SEM"},
		{
			ID:      "dm-2",
			Text:    "What is your proficiency in social media marketing?",
			Kind:    question.KindMultipleChoice,
			Options: []string{"Beginner", "Some experience", "Managed campaigns", "Expert strategist"},
			Skill:   "Social Media Marketing",
		},
		{ID: "dm-3", Text: "Rate your content creation and marketing skills", Kind: question.KindScale, Skill: "Content Marketing"},
		{ID: "dm-4", Text: "How comfortable are you with marketing analytics tools?", Kind: question.KindScale, Skill: "Analytics"},
		{
			ID:      "dm-5",
			Text:    "What is your experience with PPC advertising?",
			Kind:    question.KindMultipleChoice,
			Options: []string{"No experience", "Basic campaigns", "Optimized ads", "Advanced strategist"},
			Skill:   "PPC Advertising",
		},
	},
	"cybersecurity-analyst": {
		{ID: "cs-1", Text: "How proficient are you in network security principles?", Kind: question.KindScale, Skill: "Network Security"},
		{
			ID:      "cs-2",
			Text:    "What is your experience with threat analysis and detection?",
			Kind:    question.KindMultipleChoice,
			Options: []string{"No experience", "Basic knowledge", "Analyzed threats", "Expert analyst"},
			Skill:   "Threat Analysis",
		},
		{ID: "cs-3", Text: "Rate your incident response capabilities", Kind: question.KindScale, Skill: "Incident Response"},
		{ID: "cs-4", Text: "How familiar are you with security tools and technologies?", Kind: question.KindScale, Skill: "Security Tools"},
		{
			ID:      "cs-5",
			Text:    "What is your experience with risk assessment?",
			Kind:    question.KindMultipleChoice,
			Options: []string{"Not familiar", "Basic understanding", "Conducted assessments", "Expert evaluator"},
			Skill:   "Risk Assessment",
		},
	},
}
