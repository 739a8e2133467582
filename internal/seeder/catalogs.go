package seeder

// categoryNames is the fixed catalog of categories the seeder guarantees
// before generating articles.
var categoryNames = []string{
	"Technology", "Programming", "Web Development", "Mobile Development", "DevOps",
	"Artificial Intelligence", "Machine Learning", "Data Science", "Cybersecurity", "Cloud Computing",
	"Software Engineering", "Frontend", "Backend", "Full Stack", "Database",
	"UI/UX Design", "Project Management", "Career", "Tutorials", "News",
}

// sampleParagraphs feed generated article bodies.
var sampleParagraphs = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum.",
	"Sed ut perspiciatis unde omnis iste natus error sit voluptatem accusantium doloremque laudantium, totam rem aperiam, eaque ipsa quae ab illo inventore veritatis et quasi architecto beatae vitae dicta sunt explicabo. Nemo enim ipsam voluptatem quia voluptas sit aspernatur aut odit aut fugit, sed quia consequuntur magni dolores eos qui ratione voluptatem sequi nesciunt.",
	"At vero eos et accusamus et iusto odio dignissimos ducimus qui blanditiis praesentium voluptatum deleniti atque corrupti quos dolores et quas molestias excepturi sint occaecati cupiditate non provident, similique sunt in culpa qui officia deserunt mollitia animi, id est laborum et dolorum fuga.",
	"Et harum quidem rerum facilis est et expedita distinctio. Nam libero tempore, cum soluta nobis est eligendi optio cumque nihil impedit quo minus id quod maxime placeat facere possimus, omnis voluptas assumenda est, omnis dolor repellendus. Temporibus autem quibusdam et aut officiis debitis aut rerum necessitatibus saepe eveniet ut et voluptates repudiandae sint et molestae non recusandae.",
	"Itaque earum rerum hic tenetur a sapiente delectus, ut aut reiciendis voluptatibus maiores alias consequatur aut perferendis doloribus asperiores repellat. The quick brown fox jumps over the lazy dog. This sentence contains every letter of the alphabet and is commonly used for testing purposes.",
	"In a rapidly evolving technological landscape, developers must continuously adapt to new frameworks, languages, and methodologies. The importance of staying current with industry trends cannot be overstated, as it directly impacts career growth and project success.",
	"Modern web development encompasses a vast array of technologies and best practices. From responsive design principles to progressive web applications, developers must balance user experience with performance optimization.",
	"Database design and optimization play a crucial role in application performance. Understanding indexing strategies, query optimization, and normalization principles can significantly impact system scalability.",
	"Cloud computing has revolutionized how we deploy and manage applications. Services like AWS, Azure, and Google Cloud Platform provide scalable infrastructure solutions that enable rapid development and deployment.",
	"Cybersecurity considerations should be integrated into every phase of the development lifecycle. From secure coding practices to regular security audits, protecting user data and system integrity is paramount.",
}

// commonKeywords supplement the category name in generated keyword lists.
var commonKeywords = []string{
	"development", "programming", "software", "technology", "guide", "tutorial", "tips", "best practices",
}

// titleWords feed generated article titles.
var titleWords = []string{
	"Advanced", "Complete", "Essential", "Modern", "Ultimate", "Comprehensive", "Professional", "Practical",
	"Introduction", "Guide", "Tutorial", "Mastering", "Understanding", "Building", "Creating", "Developing",
	"Optimizing", "Implementing", "Designing", "Testing", "Deploying", "Scaling", "Managing", "Learning",
}
