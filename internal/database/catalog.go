// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"skillsite/internal/models"
	"skillsite/internal/slug"
)

const trainer = "Neeraj Kumar"

// catalogSeed is the initial site content. Position follows slice order
// within each section.
var catalogSeed = []models.Item{
	{
		Section: models.SectionAbout,
		Title:   "About Neeraj Kumar",
		Body: "Hello! I'm Neeraj Kumar, a distinguished Learning and Development Professional, " +
			"acclaimed Soft Skills Coach, and Success Strategist. Recognized as a **LinkedIn Influencer & " +
			"Top Voice in 2024**, I am deeply passionate about transforming aspiring professionals into impactful leaders.\n\n" +
			"With a strong focus on practical application, my expertise encompasses Personal Brand Building, " +
			"Emotional Intelligence, and Communication mastery. As a dedicated Soft Skills Trainer, I've had the " +
			"privilege of guiding over 100,000 professionals across various sectors to excel in their careers.\n\n" +
			"My mission is to deliver dynamic and actionable training that equips individuals and teams with the " +
			"essential soft skills needed for unparalleled success and growth in today's competitive landscape. " +
			"I also share insights as a Podcaster and contribute as a Personal Branding Expert, helping individuals " +
			"cultivate a powerful professional presence.",
	},

	// Services
	{Section: models.SectionService, Title: "Life Coaching",
		Body: "Unlock your personal potential and achieve your life goals with personalized guidance and strategic action plans."},
	{Section: models.SectionService, Title: "Interview Preparation",
		Body: "Master interview techniques, build confidence, and learn strategies to ace your next job interview."},
	{Section: models.SectionService, Title: "Public Speaking",
		Body: "Develop compelling presentation skills, overcome stage fright, and deliver impactful speeches with authority."},
	{Section: models.SectionService, Title: "Resume Writing",
		Body: "Craft a professional and impactful resume that highlights your strengths and gets you noticed by top employers."},
	{Section: models.SectionService, Title: "Life Above Personal Branding/Linkedin Mastery",
		Body: "Gain insights and strategies for effective digital presence, personal branding, and online engagement."},
	{Section: models.SectionService, Title: "Leadership Development",
		Body: "Cultivate essential leadership qualities, build high-performing teams, and drive organizational success."},
	{Section: models.SectionService, Title: "Resume Review",
		Body: "Receive expert feedback and improvements on your resume to maximize your job application success."},
	{Section: models.SectionService, Title: "Professional Training",
		Body: "Customized training modules covering a wide array of soft skills to enhance individual and team capabilities."},
	{Section: models.SectionService, Title: "Career Development Coaching",
		Body: "Strategize your career path, identify growth opportunities, and build a roadmap for long-term professional success."},

	// Workshops
	{
		Section: models.SectionWorkshop, Title: "Effective Public Speaking",
		Body: "Conquer your fear of public speaking and deliver engaging presentations with confidence. " +
			"Learn techniques for voice modulation, body language, and audience engagement.",
		ModalTitle: "Effective Public Speaking Workshop",
		ModalBody: "Details about this workshop are coming soon! This program helps you conquer public " +
			"speaking fears and deliver impactful presentations.",
	},
	{
		Section: models.SectionWorkshop, Title: "Emotional Intelligence for Leaders",
		Body: "Develop higher emotional intelligence to better understand and manage your emotions and those " +
			"of others, leading to more effective leadership.",
		ModalTitle: "Emotional Intelligence for Leaders Workshop",
		ModalBody: "More details about this workshop are coming soon! This program focuses on developing " +
			"higher emotional intelligence for effective leadership.",
	},
	{
		Section: models.SectionWorkshop, Title: "Advanced Podcasting Techniques",
		Body: "Dive deep into podcast production, storytelling, and audience engagement strategies. Learn how " +
			"to create compelling content, edit professionally, and grow your listener base.",
		ModalTitle: "Advanced Podcasting Techniques Workshop",
		ModalBody: "Information about this workshop will be available shortly! Learn to create, produce, " +
			"and grow your podcast with advanced techniques.",
	},

	// Testimonials
	{Section: models.SectionTestimonial, Title: "George Santhosh",
		Subtitle: "Jr. Cargo Executive at Lufthansa Technik | Ensuring Seamless Logistics Experience",
		Tag:      "Resume Writing", Rating: 4.8, Date: "December 3, 2024",
		Body: "Mr. Neeraj Kumar was very professional, he helped me with my communication skills, elevator pitch, etc. " +
			"His work helped me land my dream job. I recommend Mr. Neeraj Kumar."},
	{Section: models.SectionTestimonial, Title: "Konduru Priyanka",
		Subtitle: "Fullstack Developer @Infosys | AI Developer @MNHC Consultancy | Python • React • Power BI",
		Tag:      "Resume Writing", Rating: 5, Date: "December 2, 2024",
		Body: "I truly appreciate your dedication and the effort you put into making this project impactful sir. " +
			"Your guidance and engaging approach have made a significant difference in our learning experience."},
	{Section: models.SectionTestimonial, Title: "SWATI SWAMY",
		Subtitle: "Computer science engineer with strong problem-solving and communication skills.",
		Tag:      "Public Speaking", Rating: 5, Date: "December 3, 2024",
		Body: "Neeraj Kumar sir, a dynamic and inspiring soft skills trainer. He not only honed my communication " +
			"skills but also opened doors to numerous opportunities..."},
	{Section: models.SectionTestimonial, Title: "Ravichandra L S",
		Subtitle: "Ex Intern @ Nexinbe | Hacktoberfest 2024 | GSSoC 2024 | MySQL | React.js | Figma",
		Tag:      "Resume Writing", Rating: 5, Date: "December 3, 2024",
		Body: "Well-talented in soft skills and an expert in situation handling creates a person who can not only " +
			"connect with others but also navigate and manage stressful situations."},
	{Section: models.SectionTestimonial, Title: "Safia Mariam Khan",
		Subtitle: "Strategic Account Relationship Manager | Driving Business Growth | Aviation Enthusiast",
		Tag:      "Training", Rating: 5, Date: "December 4, 2024",
		Body: "I had the privilege of learning from Neeraj Kumar Sir, an exceptional educator. His ability to " +
			"engage the class through interactive activities was truly inspiring."},
	{Section: models.SectionTestimonial, Title: "Rtr. Vivek Trivedi",
		Subtitle: "HR Analyst @ Walmart | Leadership | Public Speaker | Anchor",
		Tag:      "Public Speaking", Rating: 5, Date: "December 3, 2024",
		Body: "I had the opportunity to work under the guidance of Neeraj Sir where his tremendous knowledge has helped me a lot."},
	{Section: models.SectionTestimonial, Title: "Umme Afshan",
		Subtitle: "MBA in HR and Marketing | MS Excel | Power Bi",
		Tag:      "Resume Writing", Rating: 5, Date: "January 5, 2025",
		Body: "It was a really good session, there was so much learning along with fun."},
	{Section: models.SectionTestimonial, Title: "Bhan Singh",
		Subtitle: "Founder & President, The Summit 17 | SDG Advocate | Global Changemaker",
		Tag:      "Public Speaking", Rating: 4.8, Date: "December 29, 2024",
		Body: "My experience with Neeraj Kumar was inspiring. His dedication, perseverance, and exceptional " +
			"leadership make him a true role model for success."},
	{Section: models.SectionTestimonial, Title: "Ronit Verma",
		Subtitle: "Working at Eclinicalworks",
		Tag:      "Training", Rating: 5, Date: "December 8, 2024",
		Body: "It was a very nice experience with Neeraj Sir. The training for presentation skills was absolute up to the mark."},

	// Blog
	{Section: models.SectionBlog, Title: "Personal Brand Storytelling",
		Tag: "Personal Branding", Author: trainer, Date: "Mar 01, 2025",
		URL:      "/blog/personal-brand-storytelling",
		ImageURL: "https://images.unsplash.com/photo-1556157382-97eda2d62296?q=80&w=1470&auto=format&fit=crop",
		Body: "Learn to craft your unique value proposition. In an age where personal branding sets you apart, " +
			"mastering your story is a must-have skill."},
	{Section: models.SectionBlog, Title: "What is an ATS-Friendly Resume?",
		Tag: "Career Tips", Author: trainer, Date: "Jan 22, 2025",
		URL:      "/blog/ats-friendly-resume",
		ImageURL: "https://images.unsplash.com/photo-1586281380349-632531db7ed4?q=80&w=1470&auto=format&fit=crop",
		Body: "An essential guide on creating a resume that gets past Applicant Tracking Systems and into the " +
			"hands of hiring managers."},
	{Section: models.SectionBlog, Title: "How to Shine in Job Interviews",
		Tag: "Soft Skills", Author: trainer, Date: "Nov 30, 2024",
		URL:      "/blog/how-to-shine-in-interviews",
		ImageURL: "https://images.unsplash.com/photo-1516321497487-e288fb19713f?q=80&w=1470&auto=format&fit=crop",
		Body: "A game-changing guide on leveraging soft skills to make a lasting impression in your next big " +
			"job interview. Your express journey to success!"},

	// Consultations
	{
		Section: models.SectionConsultation, Title: "Communication Skills Consultation",
		Body: "One-on-one consultation to improve your communication skills, including interpersonal " +
			"interactions, public speaking, and persuasive techniques tailored to your needs.",
		ModalBody: "Book a personalized consultation session to enhance your communication abilities. " +
			"Contact us to schedule your session!",
	},
	{
		Section: models.SectionConsultation, Title: "Leadership Development Consultation",
		Body: "Personalized guidance for emerging leaders to develop strategic thinking, team management " +
			"skills, and effective leadership strategies for your career advancement.",
		ModalBody: "Schedule a one-on-one consultation to build your leadership capabilities. " +
			"Contact us to arrange your personalized session!",
	},

	// Events
	{
		Section: models.SectionEvent, Title: "Webinar: Mastering Virtual Communication",
		Body: "Join us for a free webinar on how to communicate effectively in a remote work environment. " +
			"Learn best practices for virtual meetings and presentations.",
		ModalBody: "Registration for this webinar is opening soon! Learn virtual communication best practices.",
	},
	{
		Section: models.SectionEvent, Title: "In-Person Workshop: Advanced Team Building",
		Body: "An intensive full-day workshop designed to elevate your team's collaboration and " +
			"problem-solving skills. Limited seats available!",
		ModalBody: "Registration for this in-person workshop is opening soon! Elevate your team’s " +
			"collaboration and problem-solving skills.",
	},

	// Podcast videos; URL holds the YouTube video ID.
	{Section: models.SectionVideo, Title: "Leadership Skills: A Key to Success", URL: "sXkBQLzLWCM",
		Body: "An insightful discussion on essential leadership qualities and how to cultivate them."},
	{Section: models.SectionVideo, Title: "The Power of Effective Communication", URL: "buTTwc6mAN4",
		Body: "Explore strategies for clear, concise, and impactful communication in all aspects of life."},
	{Section: models.SectionVideo, Title: "Emotional Intelligence for Success", URL: "NtSHiVsLLmc",
		Body: "Understand how emotional intelligence can boost your leadership and personal relationships."},
	{Section: models.SectionVideo, Title: "Mastering Conflict Resolution", URL: "wMIjFg-Uaw0",
		Body: "Techniques and mindsets for resolving conflicts constructively in any environment."},
	{Section: models.SectionVideo, Title: "Building Your Powerful Personal Brand", URL: "m7qf8aGsXqg",
		Body: "Strategies to define and elevate your professional identity in today's competitive world."},
	{Section: models.SectionVideo, Title: "Effective Time Management for Productivity", URL: "58PHL__ltHc",
		Body: "Unlock techniques to optimize your time and achieve maximum productivity in your daily tasks."},
}

// SeedItems returns a copy of the initial catalog with slugs and positions
// filled in.
func SeedItems() []models.Item {
	items := make([]models.Item, len(catalogSeed))
	copy(items, catalogSeed)

	taken := make(map[string]bool, len(items))
	positions := make(map[models.Section]int)
	for i := range items {
		it := &items[i]
		it.Slug = slug.Unique(slug.Generate(string(it.Section)+" "+it.Title), taken)
		it.Position = positions[it.Section]
		positions[it.Section]++
	}
	return items
}
