package dictionary

// Built-in vocabulary groups. Tokens are stored as written; operators and
// multi-word snippets are first-class entries.
var (
	javaKeywords = []string{
		"abstract", "assert", "boolean", "break", "byte", "case", "catch", "char", "class", "const",
		"continue", "default", "do", "double", "else", "enum", "extends", "final", "finally", "float",
		"for", "goto", "if", "implements", "import", "instanceof", "int", "interface", "long", "native",
		"new", "package", "private", "protected", "public", "return", "short", "static", "strictfp", "super",
		"switch", "synchronized", "this", "throw", "throws", "transient", "try", "void", "volatile", "while",
		"true", "false", "null",
	}

	javaClasses = []string{
		"String", "Integer", "Boolean", "Character", "Byte", "Short", "Long", "Float", "Double",
		"Math", "System", "Object", "Class", "Thread", "Runnable", "Exception", "RuntimeException",
		"Throwable", "Error", "ArrayList", "LinkedList", "HashMap", "HashSet", "TreeMap", "TreeSet",
		"Vector", "Stack", "Queue", "Deque", "PriorityQueue", "Collections", "Arrays", "List", "Set",
		"Map", "Iterator", "Iterable", "Comparable", "Comparator", "StringBuilder", "StringBuffer",
		"Scanner", "File", "FileReader", "FileWriter", "BufferedReader", "BufferedWriter", "PrintWriter",
		"InputStream", "OutputStream", "Reader", "Writer", "Socket", "ServerSocket", "URL", "URLConnection",
		"Date", "Calendar", "LocalDate", "LocalTime", "LocalDateTime", "ZonedDateTime", "Instant",
		"Optional", "Stream", "Collector", "Collectors", "Function", "Predicate", "Consumer", "Supplier",
		"BiFunction", "BiPredicate", "BiConsumer", "Enum", "Annotation", "Override", "Deprecated",
		"SuppressWarnings", "FunctionalInterface",
	}

	javaMethods = []string{
		"main", "toString", "equals", "hashCode", "compareTo", "clone", "valueOf", "length", "size",
		"isEmpty", "contains", "add", "remove", "clear", "get", "set", "put", "charAt", "substring",
		"indexOf", "lastIndexOf", "toUpperCase", "toLowerCase", "trim", "split", "replace", "replaceAll",
		"matches", "format", "printf", "println", "print", "append", "delete", "insert", "reverse",
		"next", "hasNext", "nextLine", "hasNextLine", "close", "flush", "read", "write", "execute",
		"start", "stop", "run", "wait", "notify", "notifyAll", "sleep", "join", "interrupt", "isAlive",
		"compile", "find", "group", "matcher", "pattern", "parse", "sort", "binarySearch",
		"fill", "copy", "asList", "toArray", "forEach", "filter", "map", "reduce", "collect", "of",
		"getClass", "getName", "newInstance", "forName", "getDeclaredMethods", "getMethod", "invoke",
		"isInstance", "cast", "asSubclass", "getConstructor",
	}

	javaUI = []string{
		"JFrame", "JPanel", "JButton", "JLabel", "JTextField", "JTextArea", "JScrollPane", "JMenuBar",
		"JMenu", "JMenuItem", "JCheckBox", "JRadioButton", "ButtonGroup", "JComboBox", "JList",
		"JTable", "JTree", "JSplitPane", "JTabbedPane", "JDialog", "JOptionPane", "Border", "BorderFactory",
		"GridLayout", "BorderLayout", "FlowLayout", "CardLayout", "BoxLayout", "GridBagLayout",
		"GroupLayout", "SpringLayout", "Font", "Color", "Dimension", "Point", "Rectangle", "ActionListener",
		"ActionEvent", "MouseListener", "MouseEvent", "KeyListener", "KeyEvent", "ItemListener",
		"WindowListener", "FocusListener", "ChangeListener", "DocumentListener", "Scene", "Stage",
		"Application", "Button", "Label", "TextField", "TextArea", "ComboBox", "ListView", "TableView",
		"TreeView", "ScrollPane", "TabPane", "BorderPane", "GridPane", "FlowPane", "AnchorPane",
		"HBox", "VBox", "MenuItem", "MenuBar", "Dialog", "Alert", "Timeline", "Animation",
	}

	javaPatterns = []string{
		"getter", "setter", "constructor", "singleton", "factory", "builder", "adapter", "observer",
		"decorator", "strategy", "command", "proxy", "composite", "iterator", "state", "template",
		"visitor", "mediator", "memento", "prototype", "facade", "flyweight", "bridge", "interpreter",
		"repository", "service", "controller", "model", "view", "dao", "dto", "pojo", "bean", "entity",
		"dependency", "injection", "autowired", "component",
		"configuration", "transactional", "scheduled", "async", "lazy", "scope", "primary",
		"qualifier", "profile", "conditional", "property", "value", "required", "validated", "valid",
		"notnull", "nullable", "override", "synchronize", "atomic", "concurrent", "thread",
		"runnable", "callable", "future",
	}

	javaTerms = []string{
		"java", "jar", "war", "maven", "gradle", "pom", "build", "junit", "test",
		"mockito", "mock", "spring", "hibernate", "jpa", "jdbc", "servlet", "jsp", "jstl", "jsf",
		"ejb", "jms", "jmx", "jndi", "soap", "rest", "api", "json", "xml", "yaml", "properties",
		"logging", "log4j", "logback", "slf4j", "javadoc", "annotation", "reflection", "introspection",
		"serialization", "deserialization", "bytecode", "classloader", "jvm", "jre", "jdk", "javac",
		"javap", "jdeps", "jcmd", "jconsole", "jmap", "jstack", "jstat", "jvisualvm", "jshell",
	}

	operators = []string{
		"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<=", ">>=", ">>>=",
		"==", "!=", ">=", "<=", "&&", "||", "!", "&", "|", "^", "~", "<<", ">>", ">>>",
		"+", "-", "*", "/", "%", "<", ">",
	}

	snippets = []string{
		"args", "System.out.println", "public class", "private final", "try catch", "throws Exception",
		"return null", "return true", "return false", "import java.util", "import java.io",
		"import javax.swing", "import java.awt", "import java.net", "import java.sql",
	}
)

// Builtin returns the built-in vocabulary as a fresh slice, grouped in load
// order: keywords, classes, methods, UI components, patterns, terms,
// operators, snippets. Duplicates across groups are left in place; the trie
// deduplicates on insert.
func Builtin() []string {
	groups := [][]string{javaKeywords, javaClasses, javaMethods, javaUI, javaPatterns, javaTerms, operators, snippets}

	n := 0
	for _, g := range groups {
		n += len(g)
	}

	out := make([]string, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// NewBuiltin returns a trie preloaded with the built-in vocabulary.
func NewBuiltin() *Trie {
	t := NewTrie()
	t.InsertAll(Builtin())
	return t
}
